package repository

import (
	"testing"

	"sasyak-admin/internal/models"
)

func ids(us []models.User) []int64 {
	out := make([]int64, len(us))
	for i, u := range us {
		out[i] = u.ID
	}
	return out
}

func TestUserFilter(t *testing.T) {
	mgr := int64(1)
	users := []models.User{
		{ID: 1, Name: "Priya Rao", Email: "priya@sasyak.in", Role: models.RoleManager},
		{ID: 2, Name: "Arjun", Email: "arjun@sasyak.in", Role: models.RoleEmployee, ManagerID: &mgr},
		{ID: 3, Name: "Meena", Email: "meena@farm.io", Role: models.RoleSupervisor},
	}

	cases := []struct {
		name string
		f    UserFilter
		want []int64
	}{
		{"empty passes all", UserFilter{}, []int64{1, 2, 3}},
		{"name case-insensitive", UserFilter{Q: "PRIYA"}, []int64{1}},
		{"email substring", UserFilter{Q: "farm.io"}, []int64{3}},
		{"role not matched by default", UserFilter{Q: "employee"}, []int64{}},
		{"role matched when asked", UserFilter{Q: "employee", MatchRole: true}, []int64{2}},
		{"exact role", UserFilter{Role: models.RoleSupervisor}, []int64{3}},
		{"by manager", UserFilter{ManagerID: &mgr}, []int64{2}},
		{"combined", UserFilter{Q: "sasyak", Role: models.RoleManager}, []int64{1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(tc.f.Apply(users))
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("got %v, want %v", got, tc.want)
				}
			}
		})
	}
}
