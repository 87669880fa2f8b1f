package constant

type AdminType string

const (
	AdminTypeNone   AdminType = "none"
	AdminTypeLocal  AdminType = "local_admin"
	AdminTypeSuper  AdminType = "super_admin"
	AdminTypeMaster AdminType = "master_admin"
)

func (t AdminType) IsValid() bool {
	switch t {
	case AdminTypeNone, AdminTypeLocal, AdminTypeSuper, AdminTypeMaster:
		return true
	}
	return false
}

// IsRequestable reports whether a user may apply for this admin type.
func (t AdminType) IsRequestable() bool {
	return t == AdminTypeLocal || t == AdminTypeSuper
}

type AdminStatus string

const (
	AdminStatusNone       AdminStatus = "none"
	AdminStatusRegistered AdminStatus = "registered"
	AdminStatusPending    AdminStatus = "pending"
	AdminStatusApproved   AdminStatus = "approved"
	AdminStatusRejected   AdminStatus = "rejected"
)

func (s AdminStatus) IsValid() bool {
	switch s {
	case AdminStatusNone, AdminStatusRegistered, AdminStatusPending, AdminStatusApproved, AdminStatusRejected:
		return true
	}
	return false
}

// Role is a functional marketplace capability. Admin hierarchy lives in AdminType only.
type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

func (r Role) IsValid() bool {
	return r == RoleBuyer || r == RoleSeller
}

type AuditAction string

const (
	AuditActionBootstrap AuditAction = "bootstrap"
	AuditActionRegister  AuditAction = "register"
	AuditActionRequest   AuditAction = "request"
	AuditActionApprove   AuditAction = "approve"
	AuditActionReject    AuditAction = "reject"
)
