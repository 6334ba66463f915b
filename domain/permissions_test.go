package domain

import "testing"

func contains(list []string, perm string) bool {
	for _, p := range list {
		if p == perm {
			return true
		}
	}
	return false
}

func TestPermissionsForAdmin(t *testing.T) {
	general := AccessLevelGeneral
	superLvl := AccessLevelSuper

	admin := &User{Role: RoleAdmin, AccessLevel: &general}
	perms := PermissionsFor(admin)
	if !contains(perms, PermManageUsers) {
		t.Error("general admin should manage users")
	}
	if contains(perms, PermManageAdmins) {
		t.Error("general admin should not manage admins")
	}

	admin.AccessLevel = &superLvl
	perms = PermissionsFor(admin)
	if !contains(perms, PermManageAdmins) || !contains(perms, PermSystemBackup) {
		t.Error("super admin should manage admins and run backups")
	}
}

func TestPermissionsForMemberTiers(t *testing.T) {
	tests := []struct {
		tier        string
		hasPremium  bool
		hasVIP      bool
	}{
		{MembershipBasic, false, false},
		{MembershipPremium, true, false},
		{MembershipVIP, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.tier, func(t *testing.T) {
			member := &User{Role: RoleMember, MembershipType: &tt.tier}
			perms := PermissionsFor(member)

			if !contains(perms, PermEnrollClasses) {
				t.Error("every member should enroll in classes")
			}
			if contains(perms, PermPremiumAccess) != tt.hasPremium {
				t.Errorf("premium access = %v for tier %s", !tt.hasPremium, tt.tier)
			}
			if contains(perms, PermVIPAccess) != tt.hasVIP {
				t.Errorf("vip access = %v for tier %s", !tt.hasVIP, tt.tier)
			}
		})
	}
}

func TestPermissionsForMemberDefaultsToBasic(t *testing.T) {
	member := &User{Role: RoleMember}
	perms := PermissionsFor(member)
	if contains(perms, PermPremiumAccess) {
		t.Error("member without a tier should default to basic")
	}
}

func TestPermissionsForReceptionist(t *testing.T) {
	perms := PermissionsFor(&User{Role: RoleReceptionist})
	if !contains(perms, PermEnrollMembers) || !contains(perms, PermProcessPayments) {
		t.Error("receptionist missing front-desk permissions")
	}
	if contains(perms, PermManageUsers) {
		t.Error("receptionist should not manage users")
	}
}

func TestPermissionsForUnknownRole(t *testing.T) {
	if perms := PermissionsFor(&User{Role: "janitor"}); perms != nil {
		t.Errorf("unknown role should have no permissions, got %v", perms)
	}
}
