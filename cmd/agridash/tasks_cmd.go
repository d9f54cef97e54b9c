package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"sasyak-admin/internal/models"
	"sasyak-admin/internal/service"
	"sasyak-admin/internal/tasks"
)

func (a *app) tasksCmd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return errUsage
	}
	sub, rest := args[0], args[1:]
	fs := a.flags("tasks " + sub)
	board := a.tasks.Board()

	switch sub {
	case "list":
		q := fs.String("q", "", "search description, type and assignee")
		status := fs.String("status", tasks.TabAll, "status tab, or all")
		page := fs.Int("page", 1, "page, starting at 1")
		if err := parse(fs, rest); err != nil {
			return err
		}
		v := board.View(*q, *status, *page, a.cfg.PageSize)
		a.printTasks(v.Tasks)
		fmt.Fprintf(a.out, "page %d of %d (%d tasks)\n", v.Page, max(v.TotalPages, 1), v.TotalItems)

	case "stats":
		if err := parse(fs, rest); err != nil {
			return err
		}
		s := board.Stats()
		fmt.Fprintf(a.out, "total %d, pending %d, in progress %d, completed %d, scheduled %d\n",
			s.Total, s.Pending, s.InProgress, s.Completed, s.Scheduled)

	case "create":
		typ := fs.String("type", string(models.TypeFieldInspection), "task type")
		desc := fs.String("description", "", "what needs doing")
		assignee := fs.Int64("assignee", 0, "employee id")
		details := fs.String("details", "", "details as JSON")
		if err := parse(fs, rest); err != nil {
			return err
		}
		in := service.CreateTaskInput{
			TaskType:    models.TaskType(strings.ToUpper(*typ)),
			Description: *desc,
		}
		if *assignee != 0 {
			in.AssigneeID = assignee
		}
		if *details != "" && in.TaskType.Valid() {
			d, err := models.DecodeDetails(in.TaskType, json.RawMessage(*details))
			if err != nil {
				return fmt.Errorf("details: %w", err)
			}
			in.Details = d
		}
		t, err := a.tasks.Create(ctx, in)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Created task %d assigned to %s\n", t.ID, t.AssignedTo)

	case "set-status":
		id := fs.Int64("id", 0, "task id")
		status := fs.String("status", "", "PENDING, IN_PROGRESS, COMPLETED or SCHEDULED")
		if err := parse(fs, rest); err != nil {
			return err
		}
		t, err := a.tasks.UpdateStatus(ctx, *id, models.TaskStatus(strings.ToUpper(*status)))
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "Task %d is now %s\n", t.ID, tasks.StatusLabel(t.Status))

	case "notifications":
		read := fs.Int64("read", 0, "mark one entry read")
		readAll := fs.Bool("read-all", false, "mark every entry read")
		if err := parse(fs, rest); err != nil {
			return err
		}
		inbox := a.tasks.Inbox()
		if *read != 0 && !inbox.MarkRead(*read) {
			return fmt.Errorf("no notification %d", *read)
		}
		if *readAll {
			fmt.Fprintf(a.out, "Marked %s read\n", plural(inbox.MarkAllRead(), "notification"))
		}
		a.printInbox(inbox.List())
		fmt.Fprintf(a.out, "%s unread\n", humanize.Comma(int64(inbox.UnreadCount())))

	default:
		fmt.Fprintf(a.out, "unknown tasks command %q\n", sub)
		return errUsage
	}
	return nil
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func (a *app) scoutingCmd(args []string) error {
	fs := a.flags("scouting")
	q := fs.String("q", "", "search locations, land names, types and statuses")
	if err := parse(fs, args); err != nil {
		return err
	}
	c := a.catalog
	counts := c.EventStatusCounts()
	fmt.Fprintf(a.out, "Total land: %s acres\n", humanize.Comma(int64(c.TotalLandArea())))
	fmt.Fprintf(a.out, "Scouting: %d completed, %d in progress, %d scheduled over %s acres\n\n",
		counts.Completed, counts.InProgress, counts.Scheduled, humanize.Comma(int64(c.TotalScoutedArea())))
	a.printEvents(c.FilterEvents(*q))
	fmt.Fprintln(a.out)
	a.printLand(c.FilterLand(*q))
	return nil
}

func (a *app) dashboardCmd(ctx context.Context) error {
	s, err := a.dashboard.Stats(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Employees    %d\nManagers     %d\nSupervisors  %d\nTasks        %d (%d pending)\n",
		s.Employees, s.Managers, s.Supervisors, s.Tasks.Total, s.Tasks.Pending)
	return nil
}
