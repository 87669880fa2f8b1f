package listing

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/agri-market/constant"
	"github.com/muhammadheryan/agri-market/model"
)

type SQL struct {
	conn *sqlx.DB
}

// ListingRepository stores products and buyer requests. Both live in mirrored tables,
// so every call names the listing type it works on.
type ListingRepository interface {
	CreateTx(ctx context.Context, tx *sqlx.Tx, req *model.ListingEntity) (uint64, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req *model.ListingEntity) error
	SoftDelete(ctx context.Context, listingType constant.ListingType, id uint64) error
	GetByID(ctx context.Context, listingType constant.ListingType, id uint64) (*model.ListingEntity, error)
	List(ctx context.Context, filter *model.ListingFilter) ([]model.ListingEntity, error)
	Count(ctx context.Context, filter *model.ListingFilter) (int64, error)
	IncrementViews(ctx context.Context, listingType constant.ListingType, ids ...uint64) error
	IncrementContactRequests(ctx context.Context, listingType constant.ListingType, id uint64) error
	ReplaceAdminsTx(ctx context.Context, tx *sqlx.Tx, listingType constant.ListingType, listingID uint64, adminIDs []uint64) error
	GetAdmins(ctx context.Context, listingType constant.ListingType, listingID uint64) ([]model.AdminSummary, error)
	DeleteByOwnerTx(ctx context.Context, tx *sqlx.Tx, listingType constant.ListingType, ownerID uint64) error
	RemoveAdminTx(ctx context.Context, tx *sqlx.Tx, adminID uint64) error
}

func NewListingRepository(conn *sqlx.DB) ListingRepository {
	return &SQL{conn: conn}
}

type table struct {
	name      string
	ownerCol  string
	adminName string
	adminFK   string
}

var tables = map[constant.ListingType]table{
	constant.ListingTypeSeller: {name: "product", ownerCol: "seller_id", adminName: "product_admin", adminFK: "product_id"},
	constant.ListingTypeBuyer:  {name: "buyer_request", ownerCol: "buyer_id", adminName: "buyer_request_admin", adminFK: "buyer_request_id"},
}

func tableFor(listingType constant.ListingType) (table, error) {
	t, ok := tables[listingType]
	if !ok {
		return table{}, fmt.Errorf("unknown listing type %q", listingType)
	}
	return t, nil
}

func (t table) selectBase(listingType constant.ListingType) string {
	return fmt.Sprintf(`SELECT id, '%s' AS listing_type, %s AS owner_id, name, quantity, quality, item_condition, category,
		target_price, city, state, latitude, longitude, active, views, contact_requests, created_at, updated_at
		FROM %s WHERE true`, listingType, t.ownerCol, t.name)
}

func (s *SQL) CreateTx(ctx context.Context, tx *sqlx.Tx, req *model.ListingEntity) (uint64, error) {
	t, err := tableFor(req.ListingType)
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s, name, quantity, quality, item_condition, category, target_price,
		city, state, latitude, longitude, active, views, contact_requests, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1, 0, 0, NOW())`, t.name, t.ownerCol)
	result, err := tx.ExecContext(ctx, query,
		req.OwnerID, req.Name, req.Quantity, req.Quality, req.Condition, req.Category, req.TargetPrice,
		req.City, req.State, req.Latitude, req.Longitude,
	)
	if err != nil {
		return 0, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(lastID), nil
}

func (s *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, req *model.ListingEntity) error {
	t, err := tableFor(req.ListingType)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`UPDATE %s SET name = ?, quantity = ?, quality = ?, item_condition = ?, category = ?,
		target_price = ?, city = ?, state = ?, latitude = ?, longitude = ?, updated_at = NOW() WHERE id = ?`, t.name)
	_, err = tx.ExecContext(ctx, query,
		req.Name, req.Quantity, req.Quality, req.Condition, req.Category,
		req.TargetPrice, req.City, req.State, req.Latitude, req.Longitude, req.ID,
	)
	return err
}

// SoftDelete hides the listing from list and search; reads by id still find it.
func (s *SQL) SoftDelete(ctx context.Context, listingType constant.ListingType, id uint64) error {
	t, err := tableFor(listingType)
	if err != nil {
		return err
	}
	_, err = s.conn.ExecContext(ctx, fmt.Sprintf(`UPDATE %s SET active = 0, updated_at = NOW() WHERE id = ?`, t.name), id)
	return err
}

func (s *SQL) GetByID(ctx context.Context, listingType constant.ListingType, id uint64) (*model.ListingEntity, error) {
	t, err := tableFor(listingType)
	if err != nil {
		return nil, err
	}

	var entity model.ListingEntity
	if err := s.conn.QueryRowxContext(ctx, t.selectBase(listingType)+" AND id = ?", id).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// List scans one listing type, or both when filter.ListingType is empty, newest first.
func (s *SQL) List(ctx context.Context, filter *model.ListingFilter) ([]model.ListingEntity, error) {
	query, args, err := s.unionQuery(filter, func(t table, lt constant.ListingType) string {
		return t.selectBase(lt)
	})
	if err != nil {
		return nil, err
	}

	query += " ORDER BY created_at DESC, id DESC"
	if filter.Limit > 0 {
		query += " LIMIT ? OFFSET ?"
		args = append(args, filter.Limit, filter.Offset)
	}

	res := make([]model.ListingEntity, 0)
	if err := s.conn.SelectContext(ctx, &res, s.conn.Rebind(query), args...); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *SQL) Count(ctx context.Context, filter *model.ListingFilter) (int64, error) {
	query, args, err := s.unionQuery(filter, func(t table, _ constant.ListingType) string {
		return fmt.Sprintf("SELECT id FROM %s WHERE true", t.name)
	})
	if err != nil {
		return 0, err
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, s.conn.Rebind("SELECT COUNT(*) FROM ("+query+") AS listing"), args...); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *SQL) unionQuery(filter *model.ListingFilter, base func(table, constant.ListingType) string) (string, []any, error) {
	types := []constant.ListingType{constant.ListingTypeSeller, constant.ListingTypeBuyer}
	if filter.ListingType != "" {
		types = []constant.ListingType{filter.ListingType}
	}

	parts := make([]string, 0, len(types))
	args := make([]any, 0, 8*len(types))
	for _, lt := range types {
		t, err := tableFor(lt)
		if err != nil {
			return "", nil, err
		}
		where, whereArgs := buildListingWhere(t, filter)
		parts = append(parts, base(t, lt)+where)
		args = append(args, whereArgs...)
	}

	if len(parts) == 1 {
		return parts[0], args, nil
	}
	return "SELECT * FROM (" + strings.Join(parts, " UNION ALL ") + ") AS feed WHERE true", args, nil
}

func buildListingWhere(t table, filter *model.ListingFilter) (string, []any) {
	var sb strings.Builder
	args := make([]any, 0, 8)

	if filter.OwnerID != 0 {
		sb.WriteString(" AND " + t.ownerCol + " = ?")
		args = append(args, filter.OwnerID)
	}
	if filter.ActiveOnly {
		sb.WriteString(" AND active = 1")
	}
	if filter.Category != "" {
		sb.WriteString(" AND category = ?")
		args = append(args, filter.Category)
	}
	if filter.City != "" {
		sb.WriteString(" AND city = ?")
		args = append(args, filter.City)
	}
	if filter.State != "" {
		sb.WriteString(" AND state = ?")
		args = append(args, filter.State)
	}
	if filter.HasCoordinates {
		sb.WriteString(" AND latitude IS NOT NULL AND longitude IS NOT NULL")
	}
	if filter.MinLatitude != nil {
		sb.WriteString(" AND latitude >= ?")
		args = append(args, *filter.MinLatitude)
	}
	if filter.MaxLatitude != nil {
		sb.WriteString(" AND latitude <= ?")
		args = append(args, *filter.MaxLatitude)
	}
	return sb.String(), args
}

// IncrementViews bumps views by one for every id in a single statement.
func (s *SQL) IncrementViews(ctx context.Context, listingType constant.ListingType, ids ...uint64) error {
	if len(ids) == 0 {
		return nil
	}
	t, err := tableFor(listingType)
	if err != nil {
		return err
	}

	query, args, err := sqlx.In(fmt.Sprintf(`UPDATE %s SET views = views + 1 WHERE id IN (?)`, t.name), ids)
	if err != nil {
		return err
	}
	_, err = s.conn.ExecContext(ctx, s.conn.Rebind(query), args...)
	return err
}

func (s *SQL) IncrementContactRequests(ctx context.Context, listingType constant.ListingType, id uint64) error {
	t, err := tableFor(listingType)
	if err != nil {
		return err
	}
	_, err = s.conn.ExecContext(ctx, fmt.Sprintf(`UPDATE %s SET contact_requests = contact_requests + 1 WHERE id = ?`, t.name), id)
	return err
}

// ReplaceAdminsTx swaps the whole admin set of a listing. adminIDs must already be deduplicated.
func (s *SQL) ReplaceAdminsTx(ctx context.Context, tx *sqlx.Tx, listingType constant.ListingType, listingID uint64, adminIDs []uint64) error {
	t, err := tableFor(listingType)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`, t.adminName, t.adminFK), listingID); err != nil {
		return err
	}
	if len(adminIDs) == 0 {
		return nil
	}

	placeholders := make([]string, 0, len(adminIDs))
	args := make([]any, 0, 2*len(adminIDs))
	for _, adminID := range adminIDs {
		placeholders = append(placeholders, "(?, ?, NOW())")
		args = append(args, listingID, adminID)
	}
	query := fmt.Sprintf(`INSERT INTO %s (%s, admin_id, created_at) VALUES %s`, t.adminName, t.adminFK, strings.Join(placeholders, ", "))
	_, err = tx.ExecContext(ctx, query, args...)
	return err
}

func (s *SQL) GetAdmins(ctx context.Context, listingType constant.ListingType, listingID uint64) ([]model.AdminSummary, error) {
	t, err := tableFor(listingType)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT u.id, u.username, u.first_name, u.last_name, u.location, u.latitude, u.longitude,
		u.admin_type, u.admin_status
		FROM %s la JOIN user u ON u.id = la.admin_id
		WHERE la.%s = ? ORDER BY u.id ASC`, t.adminName, t.adminFK)

	res := make([]model.AdminSummary, 0)
	if err := s.conn.SelectContext(ctx, &res, query, listingID); err != nil {
		return nil, err
	}
	return res, nil
}

// DeleteByOwnerTx hard-deletes every listing of ownerID together with its admin rows.
func (s *SQL) DeleteByOwnerTx(ctx context.Context, tx *sqlx.Tx, listingType constant.ListingType, ownerID uint64) error {
	t, err := tableFor(listingType)
	if err != nil {
		return err
	}

	deleteAdmins := fmt.Sprintf(`DELETE la FROM %s la JOIN %s l ON l.id = la.%s WHERE l.%s = ?`, t.adminName, t.name, t.adminFK, t.ownerCol)
	if _, err := tx.ExecContext(ctx, deleteAdmins, ownerID); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`, t.name, t.ownerCol), ownerID)
	return err
}

// RemoveAdminTx drops adminID from the admin set of every listing of both types.
func (s *SQL) RemoveAdminTx(ctx context.Context, tx *sqlx.Tx, adminID uint64) error {
	for _, lt := range []constant.ListingType{constant.ListingTypeSeller, constant.ListingTypeBuyer} {
		t := tables[lt]
		if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE admin_id = ?`, t.adminName), adminID); err != nil {
			return err
		}
	}
	return nil
}
