package service

import (
	"testing"

	"gymsphere/domain"
)

func strPtr(s string) *string { return &s }

func TestValidateRoleFields(t *testing.T) {
	tests := []struct {
		name    string
		user    *domain.User
		wantErr bool
	}{
		{
			"plain member",
			&domain.User{Role: domain.RoleMember},
			false,
		},
		{
			"member with shift",
			&domain.User{Role: domain.RoleMember, Shift: strPtr(domain.ShiftMorning)},
			true,
		},
		{
			"member with access level",
			&domain.User{Role: domain.RoleMember, AccessLevel: strPtr(domain.AccessLevelSuper)},
			true,
		},
		{
			"receptionist with shift",
			&domain.User{Role: domain.RoleReceptionist, Shift: strPtr(domain.ShiftNight)},
			false,
		},
		{
			"receptionist with membership",
			&domain.User{Role: domain.RoleReceptionist, MembershipType: strPtr(domain.MembershipVIP)},
			true,
		},
		{
			"admin with membership",
			&domain.User{Role: domain.RoleAdmin, MembershipType: strPtr(domain.MembershipBasic)},
			true,
		},
		{
			"plain admin",
			&domain.User{Role: domain.RoleAdmin},
			false,
		},
		{
			"unknown role",
			&domain.User{Role: "janitor"},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRoleFields(tt.user)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateRoleFields() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateRoleFieldsDefaults(t *testing.T) {
	member := &domain.User{Role: domain.RoleMember}
	if err := validateRoleFields(member); err != nil {
		t.Fatalf("validateRoleFields() error: %v", err)
	}
	if member.MembershipType == nil || *member.MembershipType != domain.MembershipBasic {
		t.Error("member should default to the basic tier")
	}
	if member.MembershipStatus == nil || *member.MembershipStatus != domain.MembershipStatusActive {
		t.Error("member should default to active membership")
	}

	admin := &domain.User{Role: domain.RoleAdmin}
	if err := validateRoleFields(admin); err != nil {
		t.Fatalf("validateRoleFields() error: %v", err)
	}
	if admin.AccessLevel == nil || *admin.AccessLevel != domain.AccessLevelGeneral {
		t.Error("admin should default to general access")
	}
}
