package constant

type ListingType string

const (
	ListingTypeSeller ListingType = "seller"
	ListingTypeBuyer  ListingType = "buyer"
)

func (t ListingType) IsValid() bool {
	return t == ListingTypeSeller || t == ListingTypeBuyer
}

// OwnerRole is the role required to create a listing of this type.
func (t ListingType) OwnerRole() Role {
	if t == ListingTypeBuyer {
		return RoleBuyer
	}
	return RoleSeller
}

// ContactRole is the role required to contact the owner of a listing of this type.
func (t ListingType) ContactRole() Role {
	if t == ListingTypeBuyer {
		return RoleSeller
	}
	return RoleBuyer
}

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
)
