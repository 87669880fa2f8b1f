package export

import (
	"bytes"
	"testing"

	"github.com/muhammadheryan/agri-market/constant"
	"github.com/muhammadheryan/agri-market/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestRosterXLSX(t *testing.T) {
	lat, lng := 21.14, 79.08
	approver := uint64(1)
	data, err := RosterXLSX([]model.UserEntity{
		{ID: 2, Username: "bob", FirstName: "Bob", AdminType: constant.AdminTypeSuper, AdminStatus: constant.AdminStatusApproved, ApprovedBy: &approver, Latitude: &lat, Longitude: &lng},
		{ID: 5, Username: "alice", FirstName: "Alice", AdminType: constant.AdminTypeLocal, AdminStatus: constant.AdminStatusPending},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(rosterSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "username", rows[0][1])
	assert.Equal(t, "bob", rows[1][1])
	assert.Equal(t, "super_admin", rows[1][8])
	assert.Equal(t, "1", rows[1][10])
	assert.Equal(t, "alice", rows[2][1])
	assert.Equal(t, "pending", rows[2][9])
}
