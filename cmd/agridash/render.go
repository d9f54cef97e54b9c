package main

import (
	"fmt"
	"text/tabwriter"

	"sasyak-admin/internal/models"
	"sasyak-admin/internal/tasks"
	"sasyak-admin/internal/utils"
)

const dateLayout = "Jan 2, 2006 15:04"

func (a *app) table(header string, rows func(w *tabwriter.Writer)) {
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, header)
	rows(w)
	_ = w.Flush()
}

func orDash[T any](p *T) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprint(*p)
}

func (a *app) printUsers(users []models.User) {
	if len(users) == 0 {
		fmt.Fprintln(a.out, "No users found.")
		return
	}
	a.table("ID\tNAME\tEMAIL\tROLE\tPHONE\tMANAGER", func(w *tabwriter.Writer) {
		for _, u := range users {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role, orDash(u.PhoneNumber), orDash(u.ManagerID))
		}
	})
}

func (a *app) printTasks(list []models.Task) {
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No tasks found.")
		return
	}
	a.table("ID\tTYPE\tSTATUS\tASSIGNED TO\tDESCRIPTION\tUPDATED", func(w *tabwriter.Writer) {
		for _, t := range list {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n", t.ID, tasks.FormatTaskType(t.TaskType),
				tasks.StatusLabel(t.Status), t.AssignedTo, t.Description, t.UpdatedAt.Format(dateLayout))
		}
	})
}

func (a *app) printInbox(list []models.TaskNotification) {
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No notifications.")
		return
	}
	now := a.now()
	a.table("ID\t \tTITLE\tMESSAGE\tWHEN", func(w *tabwriter.Writer) {
		for _, n := range list {
			mark := " "
			if !n.IsRead {
				mark = "*"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", n.ID, mark, n.Title, n.Message, utils.RelativeTime(n.CreatedAt, now))
		}
	})
}

func (a *app) printEvents(list []models.ScoutingEvent) {
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No scouting events found.")
		return
	}
	a.table("ID\tLOCATION\tDATE\tASSIGNED TO\tSTATUS\tAREA\tFINDINGS", func(w *tabwriter.Writer) {
		for _, e := range list {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%s\n", e.ID, e.Location, e.Date, e.AssignedTo, e.Status, e.Area, e.Findings)
		}
	})
}

func (a *app) printLand(list []models.LandProperty) {
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No land properties found.")
		return
	}
	a.table("ID\tNAME\tTYPE\tSTATUS\tAREA\tUTILIZATION\tACQUIRED", func(w *tabwriter.Writer) {
		for _, p := range list {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d%%\t%s\n", p.ID, p.Name, p.Type, p.Status, p.Area, p.Utilization, p.AcquisitionDate)
		}
	})
}
