package usecase

import (
	"context"
	"sync"
	"time"

	"marketplace-service/internal/core/domain"

	"github.com/google/uuid"
)

// fakeMessageRepo - хранилище сообщений в памяти со счетчиком записей.
type fakeMessageRepo struct {
	mu          sync.Mutex
	byID        map[uuid.UUID]domain.Message
	updateCalls int
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{byID: make(map[uuid.UUID]domain.Message)}
}

func (f *fakeMessageRepo) Create(ctx context.Context, msg *domain.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byID[msg.ID] = *msg
	return nil
}

func (f *fakeMessageRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	msg, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	copied := msg
	return &copied, nil
}

func (f *fakeMessageRepo) Update(ctx context.Context, msg *domain.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	f.byID[msg.ID] = *msg
	return nil
}

func (f *fakeMessageRepo) ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Message, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []domain.Message
	for _, msg := range f.byID {
		if msg.SenderID == userID || msg.RecipientID == userID {
			result = append(result, msg)
		}
	}
	return result, len(result), nil
}

// fakeUserRepo - пользователи в памяти.
type fakeUserRepo struct {
	users map[uuid.UUID]domain.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := u
	return &copied, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *domain.User) error {
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) FindInArea(ctx context.Context, area domain.BoundingBox, limit int) ([]domain.User, error) {
	var result []domain.User
	for _, u := range f.users {
		if u.Location != nil && area.Contains(*u.Location) && u.AccountStatus == domain.AccountActive {
			result = append(result, u)
			if len(result) == limit {
				break
			}
		}
	}
	return result, nil
}

// fakeClusterStorage - кластеры в памяти.
type fakeClusterStorage struct {
	clusters []domain.MapCluster
	updated  []domain.MapCluster
}

func (f *fakeClusterStorage) List(ctx context.Context) ([]domain.MapCluster, error) {
	return f.clusters, nil
}

func (f *fakeClusterStorage) FindByID(ctx context.Context, id uuid.UUID) (*domain.MapCluster, error) {
	for _, c := range f.clusters {
		if c.ID == id {
			copied := c
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeClusterStorage) FindContaining(ctx context.Context, point domain.Coordinate) ([]domain.MapCluster, error) {
	var result []domain.MapCluster
	for _, c := range f.clusters {
		box, err := domain.NewBoundingBox(c.Center, c.RadiusKm)
		if err != nil {
			continue
		}
		if box.Contains(point) {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeClusterStorage) Save(ctx context.Context, cluster *domain.MapCluster) error {
	f.clusters = append(f.clusters, *cluster)
	return nil
}

func (f *fakeClusterStorage) UpdateAggregates(ctx context.Context, cluster *domain.MapCluster) error {
	f.updated = append(f.updated, *cluster)
	return nil
}

// fakeListingStorage - заглушка хранилища объявлений с фиксированными
// агрегатами и объявлениями в памяти.
type fakeListingStorage struct {
	byID          map[uuid.UUID]domain.Listing
	inquiries     map[uuid.UUID]int
	aggListings   int
	aggProperties int
	aggAvgPrice   float64
}

func (f *fakeListingStorage) Save(ctx context.Context, listing *domain.Listing) error { return nil }

func (f *fakeListingStorage) FindByID(ctx context.Context, id uuid.UUID) (*domain.Listing, error) {
	l, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	copied := l
	return &copied, nil
}

func (f *fakeListingStorage) Update(ctx context.Context, listing *domain.Listing) error { return nil }

func (f *fakeListingStorage) Deactivate(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeListingStorage) FindWithFilters(ctx context.Context, filters domain.ListingFilters, limit, offset int) (*domain.PaginatedListings, error) {
	return &domain.PaginatedListings{}, nil
}

func (f *fakeListingStorage) AggregateArea(ctx context.Context, area domain.BoundingBox) (int, int, float64, error) {
	return f.aggListings, f.aggProperties, f.aggAvgPrice, nil
}

func (f *fakeListingStorage) IncrementViews(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeListingStorage) IncrementInquiries(ctx context.Context, id uuid.UUID) error {
	if f.inquiries == nil {
		f.inquiries = make(map[uuid.UUID]int)
	}
	f.inquiries[id]++
	return nil
}

func (f *fakeListingStorage) SavePriceHistory(ctx context.Context, entry domain.PriceHistory) error {
	return nil
}

func (f *fakeListingStorage) GetPriceHistory(ctx context.Context, listingID uuid.UUID) ([]domain.PriceHistory, error) {
	return nil, nil
}

// fakeCampaignRepo - кампании в памяти.
type fakeCampaignRepo struct {
	byID map[uuid.UUID]domain.AdCampaign
}

func newFakeCampaignRepo() *fakeCampaignRepo {
	return &fakeCampaignRepo{byID: make(map[uuid.UUID]domain.AdCampaign)}
}

func (f *fakeCampaignRepo) Create(ctx context.Context, campaign *domain.AdCampaign) error {
	f.byID[campaign.ID] = *campaign
	return nil
}

func (f *fakeCampaignRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.AdCampaign, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	copied := c
	return &copied, nil
}

func (f *fakeCampaignRepo) Update(ctx context.Context, campaign *domain.AdCampaign) error {
	f.byID[campaign.ID] = *campaign
	return nil
}

func (f *fakeCampaignRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.byID, id)
	return nil
}

func (f *fakeCampaignRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.AdCampaign, int, error) {
	var result []domain.AdCampaign
	for _, c := range f.byID {
		if c.UserID == userID {
			result = append(result, c)
		}
	}
	return result, len(result), nil
}

// fakeAdRequestRepo - заявки на рекламу в памяти.
type fakeAdRequestRepo struct {
	byID map[uuid.UUID]domain.AdRequest
}

func newFakeAdRequestRepo() *fakeAdRequestRepo {
	return &fakeAdRequestRepo{byID: make(map[uuid.UUID]domain.AdRequest)}
}

func (f *fakeAdRequestRepo) Create(ctx context.Context, request *domain.AdRequest) error {
	f.byID[request.ID] = *request
	return nil
}

func (f *fakeAdRequestRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.AdRequest, error) {
	req, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	copied := req
	return &copied, nil
}

func (f *fakeAdRequestRepo) Update(ctx context.Context, request *domain.AdRequest) error {
	f.byID[request.ID] = *request
	return nil
}

func (f *fakeAdRequestRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.AdRequest, int, error) {
	var result []domain.AdRequest
	for _, req := range f.byID {
		if req.UserID == userID {
			result = append(result, req)
		}
	}
	return result, len(result), nil
}

func (f *fakeAdRequestRepo) ListAll(ctx context.Context, status string, limit, offset int) ([]domain.AdRequest, int, error) {
	var result []domain.AdRequest
	for _, req := range f.byID {
		if status == "" || req.Status == status {
			result = append(result, req)
		}
	}
	return result, len(result), nil
}

// fakeCache - кэш в памяти, запоминающий удаленные ключи.
type fakeCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (f *fakeCache) Get(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.data[key], nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, key := range keys {
		delete(f.data, key)
		f.deleted = append(f.deleted, key)
	}
	return nil
}

// fakeConfigRepo - конфигурации в памяти с поддержанием инварианта
// единственной активной записи, как в настоящем хранилище.
type fakeConfigRepo struct {
	configs map[uuid.UUID]domain.SystemConfig
}

func newFakeConfigRepo() *fakeConfigRepo {
	return &fakeConfigRepo{configs: make(map[uuid.UUID]domain.SystemConfig)}
}

func (f *fakeConfigRepo) Save(ctx context.Context, cfg *domain.SystemConfig) error {
	if cfg.IsActive {
		for id, other := range f.configs {
			if id != cfg.ID && other.IsActive {
				other.IsActive = false
				f.configs[id] = other
			}
		}
	}
	f.configs[cfg.ID] = *cfg
	return nil
}

func (f *fakeConfigRepo) GetActive(ctx context.Context) (*domain.SystemConfig, error) {
	for _, cfg := range f.configs {
		if cfg.IsActive {
			copied := cfg
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeConfigRepo) List(ctx context.Context) ([]domain.SystemConfig, error) {
	var result []domain.SystemConfig
	for _, cfg := range f.configs {
		result = append(result, cfg)
	}
	return result, nil
}

// fakePropertyStorage - хранилище объектов недвижимости в памяти.
type fakePropertyStorage struct {
	byID map[uuid.UUID]domain.Property
}

func newFakePropertyStorage() *fakePropertyStorage {
	return &fakePropertyStorage{byID: make(map[uuid.UUID]domain.Property)}
}

func (f *fakePropertyStorage) Save(ctx context.Context, property *domain.Property) error {
	f.byID[property.ID] = *property
	return nil
}

func (f *fakePropertyStorage) FindByID(ctx context.Context, id uuid.UUID) (*domain.Property, error) {
	property, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	return &property, nil
}

func (f *fakePropertyStorage) Update(ctx context.Context, property *domain.Property) error {
	if _, ok := f.byID[property.ID]; !ok {
		return domain.ErrNotFound
	}
	f.byID[property.ID] = *property
	return nil
}

func (f *fakePropertyStorage) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.byID, id)
	return nil
}

func (f *fakePropertyStorage) FindWithFilters(ctx context.Context, filters domain.PropertyFilters, limit, offset int) ([]domain.Property, int, error) {
	properties := make([]domain.Property, 0, len(f.byID))
	for _, p := range f.byID {
		properties = append(properties, p)
	}
	return properties, len(properties), nil
}

func (f *fakePropertyStorage) CountInArea(ctx context.Context, area domain.BoundingBox) (int, error) {
	count := 0
	for _, p := range f.byID {
		if area.Contains(p.Address.Location) {
			count++
		}
	}
	return count, nil
}

func (f *fakePropertyStorage) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (f *fakePropertyStorage) IncrementFavorites(ctx context.Context, id uuid.UUID) error {
	return nil
}

// fakePoiStorage - остановки и школы в памяти, выборка по квадрату.
type fakePoiStorage struct {
	stations []domain.TransitStation
	schools  []domain.School
}

func (f *fakePoiStorage) SaveTransitStation(ctx context.Context, station *domain.TransitStation) error {
	f.stations = append(f.stations, *station)
	return nil
}

func (f *fakePoiStorage) SaveSchool(ctx context.Context, school *domain.School) error {
	f.schools = append(f.schools, *school)
	return nil
}

func (f *fakePoiStorage) FindTransitInArea(ctx context.Context, area domain.BoundingBox) ([]domain.TransitStation, error) {
	found := make([]domain.TransitStation, 0)
	for _, s := range f.stations {
		if area.Contains(s.Location) {
			found = append(found, s)
		}
	}
	return found, nil
}

func (f *fakePoiStorage) FindSchoolsInArea(ctx context.Context, area domain.BoundingBox) ([]domain.School, error) {
	found := make([]domain.School, 0)
	for _, s := range f.schools {
		if area.Contains(s.Location) {
			found = append(found, s)
		}
	}
	return found, nil
}
