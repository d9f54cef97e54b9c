package tasks

import (
	"strings"

	"sasyak-admin/internal/models"
)

// TabAll is the status tab that lets every task through.
const TabAll = "all"

// FilterBySearch keeps tasks whose description, type or assignee contains
// term, ignoring case. An empty term returns list unchanged.
func FilterBySearch(list []models.Task, term string) []models.Task {
	if term == "" {
		return list
	}
	q := strings.ToLower(term)
	out := make([]models.Task, 0, len(list))
	for _, t := range list {
		if strings.Contains(strings.ToLower(t.Description), q) ||
			strings.Contains(strings.ToLower(string(t.TaskType)), q) ||
			strings.Contains(strings.ToLower(t.AssignedTo), q) {
			out = append(out, t)
		}
	}
	return out
}

// FilterByStatus keeps tasks whose status equals tab, ignoring case.
func FilterByStatus(list []models.Task, tab string) []models.Task {
	if strings.EqualFold(tab, TabAll) {
		return list
	}
	out := make([]models.Task, 0, len(list))
	for _, t := range list {
		if strings.EqualFold(string(t.Status), tab) {
			out = append(out, t)
		}
	}
	return out
}

// Paginate returns page (1-indexed) of size items. Pages past the end, or a
// non-positive page or size, give an empty slice.
func Paginate[T any](list []T, page, size int) []T {
	if page < 1 || size < 1 {
		return []T{}
	}
	if len(list) == 0 || page-1 > (len(list)-1)/size {
		return []T{}
	}
	start := (page - 1) * size
	return list[start : start+min(size, len(list)-start)]
}

func TotalPages(n, size int) int {
	if size < 1 || n <= 0 {
		return 0
	}
	pages := n / size
	if n%size != 0 {
		pages++
	}
	return pages
}

type Page struct {
	Tasks      []models.Task
	Page       int
	TotalPages int
	TotalItems int
}

// View applies search, then the status tab, then pagination.
func (b *Board) View(term, tab string, page, size int) Page {
	filtered := FilterByStatus(FilterBySearch(b.List(), term), tab)
	return Page{
		Tasks:      Paginate(filtered, page, size),
		Page:       page,
		TotalPages: TotalPages(len(filtered), size),
		TotalItems: len(filtered),
	}
}
