package service

import (
	"context"
	"strings"
	"time"

	"github.com/boring-ventures/billiards-management/internal/domain"
	"github.com/boring-ventures/billiards-management/internal/repository"
)

// In-memory repository stubs shared by the service tests. They implement the
// same nil-on-missing contract as the postgres implementations.

func profileForCompany(id, companyID string) *domain.Profile {
	return &domain.Profile{
		ID:        id,
		Email:     id + "@example.com",
		Role:      domain.RoleStaff.String(),
		CompanyID: &companyID,
		IsActive:  true,
	}
}

type memCompanyRepo struct {
	companies map[string]*domain.Company
	err       error
}

func newMemCompanyRepo() *memCompanyRepo {
	return &memCompanyRepo{companies: make(map[string]*domain.Company)}
}

func (m *memCompanyRepo) Create(_ context.Context, company *domain.Company) error {
	if m.err != nil {
		return m.err
	}
	m.companies[company.ID] = company
	return nil
}

func (m *memCompanyRepo) GetByID(_ context.Context, id string) (*domain.Company, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.companies[id], nil
}

func (m *memCompanyRepo) GetBySlug(_ context.Context, slug string) (*domain.Company, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, c := range m.companies {
		if c.Slug == slug && c.DeletedAt == nil {
			return c, nil
		}
	}
	return nil, nil
}

func (m *memCompanyRepo) List(_ context.Context, page, limit int, isActive *bool, search string) ([]*domain.Company, int, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	matched := make([]*domain.Company, 0)
	for _, c := range m.companies {
		if c.DeletedAt != nil {
			continue
		}
		if isActive != nil && c.IsActive != *isActive {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(c.Name), strings.ToLower(search)) {
			continue
		}
		matched = append(matched, c)
	}
	return matched, len(matched), nil
}

func (m *memCompanyRepo) Update(_ context.Context, company *domain.Company) error {
	if m.err != nil {
		return m.err
	}
	m.companies[company.ID] = company
	return nil
}

func (m *memCompanyRepo) SoftDelete(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	if c, ok := m.companies[id]; ok {
		now := time.Now()
		c.DeletedAt = &now
		c.IsActive = false
	}
	return nil
}

func (m *memCompanyRepo) HardDelete(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	delete(m.companies, id)
	return nil
}

func (m *memCompanyRepo) ExistsBySlug(_ context.Context, slug string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	c, _ := m.GetBySlug(context.Background(), slug)
	return c != nil, nil
}

type memProfileRepo struct {
	profiles map[string]*domain.Profile
	err      error
}

func newMemProfileRepo() *memProfileRepo {
	return &memProfileRepo{profiles: make(map[string]*domain.Profile)}
}

func (m *memProfileRepo) Create(_ context.Context, profile *domain.Profile) error {
	if m.err != nil {
		return m.err
	}
	m.profiles[profile.ID] = profile
	return nil
}

func (m *memProfileRepo) GetByID(_ context.Context, id string) (*domain.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.profiles[id], nil
}

func (m *memProfileRepo) GetByEmail(_ context.Context, email string) (*domain.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, p := range m.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, nil
}

func (m *memProfileRepo) ListByCompany(_ context.Context, companyID string, page, limit int) ([]*domain.Profile, int, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	matched := make([]*domain.Profile, 0)
	for _, p := range m.profiles {
		if p.CompanyID != nil && *p.CompanyID == companyID {
			matched = append(matched, p)
		}
	}
	return matched, len(matched), nil
}

func (m *memProfileRepo) Update(_ context.Context, profile *domain.Profile) error {
	if m.err != nil {
		return m.err
	}
	m.profiles[profile.ID] = profile
	return nil
}

func (m *memProfileRepo) Deactivate(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	if p, ok := m.profiles[id]; ok {
		p.IsActive = false
	}
	return nil
}

func (m *memProfileRepo) CountByCompany(_ context.Context, companyID string) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	count := 0
	for _, p := range m.profiles {
		if p.CompanyID != nil && *p.CompanyID == companyID {
			count++
		}
	}
	return count, nil
}

type memVenueRepo struct {
	venues map[string]*domain.Venue
	tables map[string]*domain.Table
	err    error
}

func newMemVenueRepo() *memVenueRepo {
	return &memVenueRepo{
		venues: make(map[string]*domain.Venue),
		tables: make(map[string]*domain.Table),
	}
}

func (m *memVenueRepo) Create(_ context.Context, venue *domain.Venue) error {
	if m.err != nil {
		return m.err
	}
	m.venues[venue.ID] = venue
	return nil
}

func (m *memVenueRepo) GetByID(_ context.Context, companyID, id string) (*domain.Venue, error) {
	if m.err != nil {
		return nil, m.err
	}
	v, ok := m.venues[id]
	if !ok || v.CompanyID != companyID || v.DeletedAt != nil {
		return nil, nil
	}
	return v, nil
}

func (m *memVenueRepo) ListByCompany(_ context.Context, companyID string, page, limit int) ([]*domain.Venue, int, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	matched := make([]*domain.Venue, 0)
	for _, v := range m.venues {
		if v.CompanyID == companyID && v.DeletedAt == nil {
			matched = append(matched, v)
		}
	}
	return matched, len(matched), nil
}

func (m *memVenueRepo) Update(_ context.Context, venue *domain.Venue) error {
	if m.err != nil {
		return m.err
	}
	m.venues[venue.ID] = venue
	return nil
}

func (m *memVenueRepo) SoftDelete(_ context.Context, companyID, id string) error {
	if m.err != nil {
		return m.err
	}
	if v, ok := m.venues[id]; ok && v.CompanyID == companyID {
		now := time.Now()
		v.DeletedAt = &now
	}
	return nil
}

func (m *memVenueRepo) CreateTable(_ context.Context, table *domain.Table) error {
	if m.err != nil {
		return m.err
	}
	m.tables[table.ID] = table
	return nil
}

func (m *memVenueRepo) GetTableByID(_ context.Context, companyID, id string) (*domain.Table, error) {
	if m.err != nil {
		return nil, m.err
	}
	t, ok := m.tables[id]
	if !ok || t.CompanyID != companyID {
		return nil, nil
	}
	return t, nil
}

func (m *memVenueRepo) ListTablesByVenue(_ context.Context, companyID, venueID string) ([]*domain.Table, error) {
	if m.err != nil {
		return nil, m.err
	}
	matched := make([]*domain.Table, 0)
	for _, t := range m.tables {
		if t.CompanyID == companyID && t.VenueID == venueID {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

func (m *memVenueRepo) UpdateTableStatus(_ context.Context, companyID, id, status string) error {
	if m.err != nil {
		return m.err
	}
	if t, ok := m.tables[id]; ok && t.CompanyID == companyID {
		t.Status = status
	}
	return nil
}

func (m *memVenueRepo) CountTablesByStatus(_ context.Context, companyID, status string) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	count := 0
	for _, t := range m.tables {
		if t.CompanyID == companyID && t.Status == status {
			count++
		}
	}
	return count, nil
}

type memProductRepo struct {
	products  map[string]*domain.Product
	movements []*domain.StockMovement
	err       error
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: make(map[string]*domain.Product)}
}

func (m *memProductRepo) Create(_ context.Context, product *domain.Product) error {
	if m.err != nil {
		return m.err
	}
	m.products[product.ID] = product
	return nil
}

func (m *memProductRepo) GetByID(_ context.Context, companyID, id string) (*domain.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.products[id]
	if !ok || p.CompanyID != companyID || p.DeletedAt != nil {
		return nil, nil
	}
	return p, nil
}

func (m *memProductRepo) List(_ context.Context, companyID string, page, limit int, activeOnly bool, search string) ([]*domain.Product, int, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	matched := make([]*domain.Product, 0)
	for _, p := range m.products {
		if p.CompanyID != companyID || p.DeletedAt != nil {
			continue
		}
		if activeOnly && !p.IsActive {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(search)) {
			continue
		}
		matched = append(matched, p)
	}
	return matched, len(matched), nil
}

func (m *memProductRepo) Update(_ context.Context, product *domain.Product) error {
	if m.err != nil {
		return m.err
	}
	m.products[product.ID] = product
	return nil
}

func (m *memProductRepo) SoftDelete(_ context.Context, companyID, id string) error {
	if m.err != nil {
		return m.err
	}
	if p, ok := m.products[id]; ok && p.CompanyID == companyID {
		now := time.Now()
		p.DeletedAt = &now
		p.IsActive = false
	}
	return nil
}

func (m *memProductRepo) AdjustStock(_ context.Context, companyID, id string, delta int) (*domain.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.products[id]
	if !ok || p.CompanyID != companyID || p.DeletedAt != nil {
		return nil, nil
	}
	if p.Stock+delta < 0 {
		return nil, repository.ErrInsufficientStock
	}
	p.Stock += delta
	return p, nil
}

func (m *memProductRepo) RecordMovement(_ context.Context, movement *domain.StockMovement) error {
	if m.err != nil {
		return m.err
	}
	m.movements = append(m.movements, movement)
	return nil
}

func (m *memProductRepo) CountLowStock(_ context.Context, companyID string) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	count := 0
	for _, p := range m.products {
		if p.CompanyID == companyID && p.DeletedAt == nil && p.IsActive && p.IsLowStock() {
			count++
		}
	}
	return count, nil
}

type memOrderRepo struct {
	orders map[string]*domain.Order
	err    error
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: make(map[string]*domain.Order)}
}

func (m *memOrderRepo) Create(_ context.Context, order *domain.Order) error {
	if m.err != nil {
		return m.err
	}
	m.orders[order.ID] = order
	return nil
}

func (m *memOrderRepo) GetByID(_ context.Context, companyID, id string) (*domain.Order, error) {
	if m.err != nil {
		return nil, m.err
	}
	o, ok := m.orders[id]
	if !ok || o.CompanyID != companyID {
		return nil, nil
	}
	return o, nil
}

func (m *memOrderRepo) ListByCompany(_ context.Context, companyID, status string, page, limit int) ([]*domain.Order, int, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	matched := make([]*domain.Order, 0)
	for _, o := range m.orders {
		if o.CompanyID != companyID {
			continue
		}
		if status != "" && o.Status != status {
			continue
		}
		matched = append(matched, o)
	}
	return matched, len(matched), nil
}

func (m *memOrderRepo) AddItem(_ context.Context, order *domain.Order, item *domain.OrderItem) error {
	if m.err != nil {
		return m.err
	}
	m.orders[order.ID] = order
	return nil
}

func (m *memOrderRepo) UpdateStatus(_ context.Context, order *domain.Order) error {
	if m.err != nil {
		return m.err
	}
	m.orders[order.ID] = order
	return nil
}

func (m *memOrderRepo) CountOpen(_ context.Context, companyID string) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	count := 0
	for _, o := range m.orders {
		if o.CompanyID == companyID && o.Status == domain.OrderStatusOpen {
			count++
		}
	}
	return count, nil
}

type memTransactionRepo struct {
	transactions []*domain.Transaction
	err          error
}

func newMemTransactionRepo() *memTransactionRepo {
	return &memTransactionRepo{}
}

func (m *memTransactionRepo) Create(_ context.Context, tx *domain.Transaction) error {
	if m.err != nil {
		return m.err
	}
	m.transactions = append(m.transactions, tx)
	return nil
}

func (m *memTransactionRepo) GetByID(_ context.Context, companyID, id string) (*domain.Transaction, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, tx := range m.transactions {
		if tx.ID == id && tx.CompanyID == companyID {
			return tx, nil
		}
	}
	return nil, nil
}

func (m *memTransactionRepo) ListByCompany(_ context.Context, companyID string, filter repository.TransactionFilter) ([]*domain.Transaction, int, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	matched := make([]*domain.Transaction, 0)
	for _, tx := range m.transactions {
		if tx.CompanyID != companyID {
			continue
		}
		if filter.Type != "" && tx.Type != filter.Type {
			continue
		}
		if filter.From != nil && tx.OccurredAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && !tx.OccurredAt.Before(*filter.To) {
			continue
		}
		matched = append(matched, tx)
	}
	return matched, len(matched), nil
}

func (m *memTransactionRepo) SummaryByCategory(_ context.Context, companyID string, from, to time.Time) ([]repository.CategorySummary, error) {
	if m.err != nil {
		return nil, m.err
	}
	byKey := make(map[string]*repository.CategorySummary)
	order := make([]string, 0)
	for _, tx := range m.transactions {
		if tx.CompanyID != companyID || tx.OccurredAt.Before(from) || !tx.OccurredAt.Before(to) {
			continue
		}
		key := tx.Category + "|" + tx.Type
		if _, ok := byKey[key]; !ok {
			byKey[key] = &repository.CategorySummary{Category: tx.Category, Type: tx.Type}
			order = append(order, key)
		}
		byKey[key].Total += tx.Amount
		byKey[key].Count++
	}
	summaries := make([]repository.CategorySummary, 0, len(order))
	for _, key := range order {
		summaries = append(summaries, *byKey[key])
	}
	return summaries, nil
}

func (m *memTransactionRepo) SumByTypeSince(_ context.Context, companyID, txType string, since time.Time) (float64, error) {
	if m.err != nil {
		return 0, m.err
	}
	var total float64
	for _, tx := range m.transactions {
		if tx.CompanyID == companyID && tx.Type == txType && !tx.OccurredAt.Before(since) {
			total += tx.Amount
		}
	}
	return total, nil
}
