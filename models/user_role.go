package models

type UserRole string

const (
	SpaceAdminRole     UserRole = "SPACE_ADMIN_ROLE"
	SpaceMakerRole     UserRole = "SPACE_MAKER_ROLE"
	SpaceCheckerRole   UserRole = "SPACE_CHECKER_ROLE"
	UserRoleSuperAdmin UserRole = "SUPER_ADMIN"
)

var roleHumanName = map[UserRole]string{
	SpaceAdminRole:     "Space administrator",
	SpaceMakerRole:     "Maker",
	SpaceCheckerRole:   "Checker",
	UserRoleSuperAdmin: "System super administrator",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsValid() bool {
	_, exist := roleHumanName[r]
	return exist
}

func (r UserRole) IsSpaceAdmin() bool {
	return r == SpaceAdminRole
}

// CanMake reports whether the role may submit change requests.
func (r UserRole) CanMake() bool {
	return r == SpaceMakerRole || r == SpaceAdminRole
}

// CanCheck reports whether the role may approve or reject change requests.
func (r UserRole) CanCheck() bool {
	return r == SpaceCheckerRole || r == SpaceAdminRole
}

const SystemUser = "System"
