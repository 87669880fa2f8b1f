package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name                            string
		page, perPage                   int
		wantPage, wantPerPage, wantOffs int
	}{
		{name: "defaults", page: 0, perPage: 0, wantPage: 1, wantPerPage: 20, wantOffs: 0},
		{name: "third page", page: 3, perPage: 10, wantPage: 3, wantPerPage: 10, wantOffs: 20},
		{name: "per page capped", page: 2, perPage: 1000, wantPage: 2, wantPerPage: 100, wantOffs: 100},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			page, perPage, offset := Paginate(tt.page, tt.perPage)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPerPage, perPage)
			assert.Equal(t, tt.wantOffs, offset)
		})
	}
}

func TestRoleSet_ScanAndValue(t *testing.T) {
	var r RoleSet
	assert.NoError(t, r.Scan([]byte("buyer, seller,")))
	assert.Equal(t, RoleSet{"buyer", "seller"}, r)

	v, err := r.Value()
	assert.NoError(t, err)
	assert.Equal(t, "buyer,seller", v)

	assert.Equal(t, RoleSet{"seller"}, RoleSet{"seller", "admin", "seller"}.Normalize())
}
