package domain

// Permission names checked by the dashboards. The original per-role user
// subclasses collapse into this lookup keyed by the role discriminant.
const (
	PermManageUsers     = "manage_users"
	PermManageClasses   = "manage_classes"
	PermManageTrainers  = "manage_trainers"
	PermViewReports     = "view_reports"
	PermManagePayments  = "manage_payments"
	PermConfigureSystem = "configure_system"
	PermManageAdmins    = "manage_admins"
	PermSystemBackup    = "system_backup"

	PermViewClasses    = "view_classes"
	PermEnrollClasses  = "enroll_classes"
	PermViewProfile    = "view_profile"
	PermUpdateProfile  = "update_profile"
	PermPremiumAccess  = "premium_access"
	PermPersonalCoach  = "personal_coach"
	PermVIPAccess      = "vip_access"

	PermManageMembers   = "manage_members"
	PermProcessPayments = "process_payments"
	PermEnrollMembers   = "enroll_members"
	PermBasicReports    = "basic_reports"
	PermHandleInquiries = "handle_inquiries"
)

// PermissionsFor returns the capability list for a user. Admin capabilities
// widen with the super access level; member capabilities widen with the
// membership tier.
func PermissionsFor(u *User) []string {
	switch u.Role {
	case RoleAdmin:
		perms := []string{
			PermManageUsers,
			PermManageClasses,
			PermManageTrainers,
			PermViewReports,
			PermManagePayments,
			PermConfigureSystem,
		}
		if u.AccessLevel != nil && *u.AccessLevel == AccessLevelSuper {
			perms = append(perms, PermManageAdmins, PermSystemBackup)
		}
		return perms

	case RoleMember:
		perms := []string{
			PermViewClasses,
			PermEnrollClasses,
			PermViewProfile,
			PermUpdateProfile,
		}
		tier := MembershipBasic
		if u.MembershipType != nil {
			tier = *u.MembershipType
		}
		if tier == MembershipPremium || tier == MembershipVIP {
			perms = append(perms, PermPremiumAccess)
		}
		if tier == MembershipVIP {
			perms = append(perms, PermPersonalCoach, PermVIPAccess)
		}
		return perms

	case RoleReceptionist:
		return []string{
			PermManageMembers,
			PermProcessPayments,
			PermViewClasses,
			PermEnrollMembers,
			PermBasicReports,
			PermHandleInquiries,
		}
	}
	return nil
}
