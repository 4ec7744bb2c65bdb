package usecase

import (
	"testing"

	"distrito_racing/internal/domain/entities"
)

func TestAuthorize(t *testing.T) {
	admin := entities.Profile{UserID: "u1", Role: entities.RoleAdmin, IsActive: true}
	member := entities.Profile{UserID: "u2", Role: entities.RoleUser, IsActive: true}
	inactiveAdmin := entities.Profile{UserID: "u3", Role: entities.RoleAdmin, IsActive: false}

	cases := []struct {
		name     string
		profile  entities.Profile
		action   Action
		resource Resource
		want     bool
	}{
		{name: "admin manages events", profile: admin, action: ActionManage, resource: ResourceEvents, want: true},
		{name: "admin manages products", profile: admin, action: ActionManage, resource: ResourceProducts, want: true},
		{name: "admin manages storage", profile: admin, action: ActionManage, resource: ResourceStorage, want: true},
		{name: "admin reads registrations", profile: admin, action: ActionRead, resource: ResourceRegistrations, want: true},
		{name: "admin lists profiles", profile: admin, action: ActionRead, resource: ResourceProfiles, want: true},
		{name: "member cannot manage events", profile: member, action: ActionManage, resource: ResourceEvents, want: false},
		{name: "member reads events", profile: member, action: ActionRead, resource: ResourceEvents, want: true},
		{name: "member reads products", profile: member, action: ActionRead, resource: ResourceProducts, want: true},
		{name: "member cannot read registrations", profile: member, action: ActionRead, resource: ResourceRegistrations, want: false},
		{name: "member cannot list profiles", profile: member, action: ActionRead, resource: ResourceProfiles, want: false},
		{name: "inactive admin denied", profile: inactiveAdmin, action: ActionManage, resource: ResourceEvents, want: false},
		{name: "unknown resource denied", profile: admin, action: ActionRead, resource: Resource("unknown"), want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Authorize(tc.profile, tc.action, tc.resource); got != tc.want {
				t.Fatalf("Authorize(%s, %s, %s) = %t, want %t", tc.profile.UserID, tc.action, tc.resource, got, tc.want)
			}
		})
	}
}
