package rest

import (
	"encoding/json"
	"time"

	"marketplace-service/internal/core/domain"
)

// --- Общие DTO ---

type CoordinateDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PaginatedResponse - стандартная обертка для списков с пагинацией.
type PaginatedResponse struct {
	Items      interface{} `json:"items"`
	TotalCount int         `json:"total_count"`
	Page       int         `json:"page"`
	PerPage    int         `json:"per_page"`
}

// --- Пользователи ---

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateUserRequest struct {
	FirstName    string         `json:"first_name"`
	LastName     string         `json:"last_name"`
	Phone        string         `json:"phone"`
	PrivacyLevel string         `json:"privacy_level"`
	Location     *CoordinateDTO `json:"location"`
}

type UserResponse struct {
	ID            string         `json:"id"`
	Email         string         `json:"email"`
	FirstName     string         `json:"first_name"`
	LastName      string         `json:"last_name"`
	Phone         string         `json:"phone"`
	Role          string         `json:"role"`
	AccountStatus string         `json:"account_status"`
	Location      *CoordinateDTO `json:"location,omitempty"`
	PrivacyLevel  string         `json:"privacy_level"`
	CreatedAt     time.Time      `json:"created_at"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func toUserResponse(u *domain.User) UserResponse {
	resp := UserResponse{
		ID:            u.ID.String(),
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Phone:         u.Phone,
		Role:          u.Role,
		AccountStatus: u.AccountStatus,
		PrivacyLevel:  u.PrivacyLevel,
		CreatedAt:     u.CreatedAt,
	}
	if u.Location != nil {
		resp.Location = &CoordinateDTO{Latitude: u.Location.Lat, Longitude: u.Location.Lon}
	}
	return resp
}

// --- Объекты недвижимости ---

type AddressDTO struct {
	Street       string  `json:"street"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	PostalCode   string  `json:"postal_code"`
	Country      string  `json:"country"`
	Neighborhood string  `json:"neighborhood"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

type PropertyRequest struct {
	PropertyType string     `json:"property_type"`
	Status       string     `json:"status"`
	Address      AddressDTO `json:"address"`
	YearBuilt    *int       `json:"year_built"`
	LotSizeSqft  *float64   `json:"lot_size_sqft"`
	UnitNumber   string     `json:"unit_number"`
	FloorNumber  *int       `json:"floor_number"`
}

type PropertyResponse struct {
	ID             string     `json:"id"`
	OwnerID        string     `json:"owner_id"`
	PropertyType   string     `json:"property_type"`
	Status         string     `json:"status"`
	Address        AddressDTO `json:"address"`
	YearBuilt      *int       `json:"year_built,omitempty"`
	LotSizeSqft    *float64   `json:"lot_size_sqft,omitempty"`
	UnitNumber     string     `json:"unit_number,omitempty"`
	FloorNumber    *int       `json:"floor_number,omitempty"`
	ViewsCount     int        `json:"views_count"`
	FavoritesCount int        `json:"favorites_count"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func toPropertyResponse(p *domain.Property) PropertyResponse {
	return PropertyResponse{
		ID:           p.ID.String(),
		OwnerID:      p.OwnerID.String(),
		PropertyType: p.PropertyType,
		Status:       p.Status,
		Address: AddressDTO{
			Street:       p.Address.Street,
			City:         p.Address.City,
			State:        p.Address.State,
			PostalCode:   p.Address.PostalCode,
			Country:      p.Address.Country,
			Neighborhood: p.Address.Neighborhood,
			Latitude:     p.Address.Location.Lat,
			Longitude:    p.Address.Location.Lon,
		},
		YearBuilt:      p.YearBuilt,
		LotSizeSqft:    p.LotSizeSqft,
		UnitNumber:     p.UnitNumber,
		FloorNumber:    p.FloorNumber,
		ViewsCount:     p.ViewsCount,
		FavoritesCount: p.FavoritesCount,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// --- Объявления ---

type ListingRequest struct {
	PropertyID   string     `json:"property_id"`
	ListingType  string     `json:"listing_type"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Price        float64    `json:"price"`
	Bedrooms     int        `json:"bedrooms"`
	Bathrooms    float64    `json:"bathrooms"`
	SquareFeet   *float64   `json:"square_feet"`
	ListedDate   time.Time  `json:"listed_date"`
	ContractDate *time.Time `json:"contract_date"`
	ClosingDate  *time.Time `json:"closing_date"`
}

type ListingResponse struct {
	ID             string        `json:"id"`
	PropertyID     string        `json:"property_id"`
	UserID         string        `json:"user_id"`
	ListingType    string        `json:"listing_type"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Price          float64       `json:"price"`
	Bedrooms       int           `json:"bedrooms"`
	Bathrooms      float64       `json:"bathrooms"`
	SquareFeet     *float64      `json:"square_feet,omitempty"`
	IsActive       bool          `json:"is_active"`
	ListedDate     time.Time     `json:"listed_date"`
	ContractDate   *time.Time    `json:"contract_date,omitempty"`
	ClosingDate    *time.Time    `json:"closing_date,omitempty"`
	DaysOnMarket   *int          `json:"days_on_market,omitempty"`
	ViewsCount     int           `json:"views_count"`
	InquiriesCount int           `json:"inquiries_count"`
	Location       CoordinateDTO `json:"location"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

func toListingResponse(l *domain.Listing) ListingResponse {
	return ListingResponse{
		ID:             l.ID.String(),
		PropertyID:     l.PropertyID.String(),
		UserID:         l.UserID.String(),
		ListingType:    l.ListingType,
		Title:          l.Title,
		Description:    l.Description,
		Price:          l.Price,
		Bedrooms:       l.Bedrooms,
		Bathrooms:      l.Bathrooms,
		SquareFeet:     l.SquareFeet,
		IsActive:       l.IsActive,
		ListedDate:     l.ListedDate,
		ContractDate:   l.ContractDate,
		ClosingDate:    l.ClosingDate,
		DaysOnMarket:   l.DaysOnMarket,
		ViewsCount:     l.ViewsCount,
		InquiriesCount: l.InquiresCount,
		Location:       CoordinateDTO{Latitude: l.Location.Lat, Longitude: l.Location.Lon},
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

func toListingResponses(listings []domain.Listing) []ListingResponse {
	result := make([]ListingResponse, 0, len(listings))
	for i := range listings {
		result = append(result, toListingResponse(&listings[i]))
	}
	return result
}

type PriceHistoryResponse struct {
	ID               string    `json:"id"`
	OldPrice         float64   `json:"old_price"`
	NewPrice         float64   `json:"new_price"`
	ChangePercentage float64   `json:"change_percentage"`
	ChangedAt        time.Time `json:"changed_at"`
}

type InquiryRequest struct {
	Body string `json:"body"`
}

type OpenHouseRequest struct {
	StartTime            time.Time `json:"start_time"`
	EndTime              time.Time `json:"end_time"`
	RegistrationRequired bool      `json:"registration_required"`
	MaxAttendees         *int      `json:"max_attendees"`
}

type OpenHouseResponse struct {
	ID                   string    `json:"id"`
	ListingID            string    `json:"listing_id"`
	StartTime            time.Time `json:"start_time"`
	EndTime              time.Time `json:"end_time"`
	RegistrationRequired bool      `json:"registration_required"`
	MaxAttendees         *int      `json:"max_attendees,omitempty"`
	AttendeesCount       int       `json:"attendees_count"`
}

func toOpenHouseResponse(oh *domain.OpenHouse) OpenHouseResponse {
	return OpenHouseResponse{
		ID:                   oh.ID.String(),
		ListingID:            oh.ListingID.String(),
		StartTime:            oh.StartTime,
		EndTime:              oh.EndTime,
		RegistrationRequired: oh.RegistrationRequired,
		MaxAttendees:         oh.MaxAttendees,
		AttendeesCount:       oh.AttendeesCount,
	}
}

// --- Карта ---

type ClusterResponse struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Center        CoordinateDTO `json:"center"`
	RadiusKm      float64       `json:"radius_km"`
	PropertyCount int           `json:"property_count"`
	ListingCount  int           `json:"listing_count"`
	AvgPrice      float64       `json:"avg_price"`
	LastUpdated   time.Time     `json:"last_updated"`
}

func toClusterResponses(clusters []domain.MapCluster) []ClusterResponse {
	result := make([]ClusterResponse, 0, len(clusters))
	for _, c := range clusters {
		result = append(result, ClusterResponse{
			ID:            c.ID.String(),
			Name:          c.Name,
			Center:        CoordinateDTO{Latitude: c.Center.Lat, Longitude: c.Center.Lon},
			RadiusKm:      c.RadiusKm,
			PropertyCount: c.PropertyCount,
			ListingCount:  c.ListingCount,
			AvgPrice:      c.AvgPrice,
			LastUpdated:   c.LastUpdated,
		})
	}
	return result
}

type MapViewResponse struct {
	Listings      []ListingResponse `json:"listings"`
	ListingCount  int               `json:"listing_count"`
	PropertyCount int               `json:"property_count"`
	AvgPrice      float64           `json:"avg_price"`
	Clusters      []ClusterResponse `json:"clusters"`
}

// --- Кампании и транзакции ---

type CampaignRequest struct {
	Name      string          `json:"name"`
	Status    string          `json:"status"`
	Budget    float64         `json:"budget"`
	StartDate *time.Time      `json:"start_date"`
	EndDate   *time.Time      `json:"end_date"`
	Targeting json.RawMessage `json:"targeting"`
}

type CampaignResponse struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	Name            string          `json:"name"`
	Status          string          `json:"status"`
	ApprovalStatus  string          `json:"approval_status"`
	Budget          float64         `json:"budget"`
	TotalSpent      float64         `json:"total_spent"`
	RemainingBudget float64         `json:"remaining_budget"`
	StartDate       *time.Time      `json:"start_date,omitempty"`
	EndDate         *time.Time      `json:"end_date,omitempty"`
	Targeting       json.RawMessage `json:"targeting,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

func toCampaignResponse(c *domain.AdCampaign) CampaignResponse {
	return CampaignResponse{
		ID:              c.ID.String(),
		UserID:          c.UserID.String(),
		Name:            c.Name,
		Status:          c.Status,
		ApprovalStatus:  c.ApprovalStatus,
		Budget:          c.Budget,
		TotalSpent:      c.TotalSpent,
		RemainingBudget: c.RemainingBudget,
		StartDate:       c.StartDate,
		EndDate:         c.EndDate,
		Targeting:       c.Targeting,
		CreatedAt:       c.CreatedAt,
	}
}

type AdRequestRequest struct {
	CampaignID  *string    `json:"campaign_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	RequestType string     `json:"request_type"`
	Budget      *float64   `json:"budget"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

type AdRequestResponse struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	CampaignID  *string    `json:"campaign_id,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	RequestType string     `json:"request_type"`
	Status      string     `json:"status"`
	Budget      *float64   `json:"budget,omitempty"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func toAdRequestResponse(r *domain.AdRequest) AdRequestResponse {
	resp := AdRequestResponse{
		ID:          r.ID.String(),
		UserID:      r.UserID.String(),
		Title:       r.Title,
		Description: r.Description,
		RequestType: r.RequestType,
		Status:      r.Status,
		Budget:      r.Budget,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.CampaignID != nil {
		id := r.CampaignID.String()
		resp.CampaignID = &id
	}
	return resp
}

type ResolveAdRequestRequest struct {
	Approve bool `json:"approve"`
}

type BannerRequest struct {
	Title     string `json:"title"`
	ImageURL  string `json:"image_url"`
	TargetURL string `json:"target_url"`
	Placement string `json:"placement"`
	Priority  int    `json:"priority"`
	IsActive  bool   `json:"is_active"`
}

type BannerResponse struct {
	ID          string    `json:"id"`
	CampaignID  string    `json:"campaign_id"`
	Title       string    `json:"title"`
	ImageURL    string    `json:"image_url"`
	TargetURL   string    `json:"target_url"`
	Placement   string    `json:"placement"`
	Priority    int       `json:"priority"`
	Impressions int       `json:"impressions"`
	Clicks      int       `json:"clicks"`
	Conversions int       `json:"conversions"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func toBannerResponse(b *domain.Banner) BannerResponse {
	return BannerResponse{
		ID:          b.ID.String(),
		CampaignID:  b.CampaignID.String(),
		Title:       b.Title,
		ImageURL:    b.ImageURL,
		TargetURL:   b.TargetURL,
		Placement:   b.Placement,
		Priority:    b.Priority,
		Impressions: b.Impressions,
		Clicks:      b.Clicks,
		Conversions: b.Conversions,
		IsActive:    b.IsActive,
		CreatedAt:   b.CreatedAt,
	}
}

type TransactionRequest struct {
	ListingID  string  `json:"listing_id"`
	CampaignID *string `json:"campaign_id"`
	Amount     float64 `json:"amount"`
}

type TransactionResponse struct {
	ID         string    `json:"id"`
	ListingID  string    `json:"listing_id"`
	BuyerID    string    `json:"buyer_id"`
	SellerID   string    `json:"seller_id"`
	CampaignID *string   `json:"campaign_id,omitempty"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func toTransactionResponse(t *domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:        t.ID.String(),
		ListingID: t.ListingID.String(),
		BuyerID:   t.BuyerID.String(),
		SellerID:  t.SellerID.String(),
		Amount:    t.Amount,
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
	}
	if t.CampaignID != nil {
		s := t.CampaignID.String()
		resp.CampaignID = &s
	}
	return resp
}

// --- Сообщения и поддержка ---

type MessageRequest struct {
	RecipientID string  `json:"recipient_id"`
	Subject     string  `json:"subject"`
	Body        string  `json:"body"`
	ParentID    *string `json:"parent_id"`
}

type MessageResponse struct {
	ID          string     `json:"id"`
	SenderID    string     `json:"sender_id"`
	RecipientID string     `json:"recipient_id"`
	Subject     string     `json:"subject"`
	Body        string     `json:"body"`
	IsRead      bool       `json:"is_read"`
	ReadAt      *time.Time `json:"read_at,omitempty"`
	ParentID    *string    `json:"parent_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func toMessageResponse(m *domain.Message) MessageResponse {
	resp := MessageResponse{
		ID:          m.ID.String(),
		SenderID:    m.SenderID.String(),
		RecipientID: m.RecipientID.String(),
		Subject:     m.Subject,
		Body:        m.Body,
		IsRead:      m.IsRead,
		ReadAt:      m.ReadAt,
		CreatedAt:   m.CreatedAt,
	}
	if m.ParentID != nil {
		s := m.ParentID.String()
		resp.ParentID = &s
	}
	return resp
}

type TicketRequest struct {
	Category    string  `json:"category"`
	Subject     string  `json:"subject"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	AssignedTo  *string `json:"assigned_to"`
}

type TicketResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Category    string    `json:"category"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	AssignedTo  *string   `json:"assigned_to,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toTicketResponse(t *domain.SupportTicket) TicketResponse {
	resp := TicketResponse{
		ID:          t.ID.String(),
		UserID:      t.UserID.String(),
		Category:    t.Category,
		Subject:     t.Subject,
		Description: t.Description,
		Status:      t.Status,
		Priority:    t.Priority,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if t.AssignedTo != nil {
		s := t.AssignedTo.String()
		resp.AssignedTo = &s
	}
	return resp
}

type FeedbackRequest struct {
	Type    string `json:"type"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type FeedbackResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// --- Контент и конфигурация ---

type SystemConfigRequest struct {
	SiteName        string `json:"site_name"`
	MaintenanceMode bool   `json:"maintenance_mode"`
	MaxUploadSizeMB int    `json:"max_upload_size_mb"`
	SupportEmail    string `json:"support_email"`
	IsActive        bool   `json:"is_active"`
}

type SystemConfigResponse struct {
	ID              string    `json:"id"`
	SiteName        string    `json:"site_name"`
	MaintenanceMode bool      `json:"maintenance_mode"`
	MaxUploadSizeMB int       `json:"max_upload_size_mb"`
	SupportEmail    string    `json:"support_email"`
	IsActive        bool      `json:"is_active"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toSystemConfigResponse(c *domain.SystemConfig) SystemConfigResponse {
	return SystemConfigResponse{
		ID:              c.ID.String(),
		SiteName:        c.SiteName,
		MaintenanceMode: c.MaintenanceMode,
		MaxUploadSizeMB: c.MaxUploadSizeMB,
		SupportEmail:    c.SupportEmail,
		IsActive:        c.IsActive,
		UpdatedAt:       c.UpdatedAt,
	}
}

type AnnouncementRequest struct {
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	TargetAudience string     `json:"target_audience"`
	IsActive       bool       `json:"is_active"`
	PublishFrom    *time.Time `json:"publish_from"`
	PublishUntil   *time.Time `json:"publish_until"`
}

type AnnouncementResponse struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Content        string     `json:"content"`
	TargetAudience string     `json:"target_audience"`
	IsActive       bool       `json:"is_active"`
	PublishFrom    *time.Time `json:"publish_from,omitempty"`
	PublishUntil   *time.Time `json:"publish_until,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type ContactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type FAQRequest struct {
	Category     string `json:"category"`
	Question     string `json:"question"`
	Answer       string `json:"answer"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
}

type FAQResponse struct {
	ID              string `json:"id"`
	Category        string `json:"category"`
	Question        string `json:"question"`
	Answer          string `json:"answer"`
	DisplayOrder    int    `json:"display_order"`
	HelpfulCount    int    `json:"helpful_count"`
	NotHelpfulCount int    `json:"not_helpful_count"`
}

type VoteFAQRequest struct {
	Helpful bool `json:"helpful"`
}

type LegalDocumentRequest struct {
	DocumentType  string    `json:"document_type"`
	Version       string    `json:"version"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	EffectiveDate time.Time `json:"effective_date"`
	IsActive      bool      `json:"is_active"`
}

type LegalDocumentResponse struct {
	ID            string    `json:"id"`
	DocumentType  string    `json:"document_type"`
	Version       string    `json:"version"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	EffectiveDate time.Time `json:"effective_date"`
}

type TransitStationRequest struct {
	Name        string        `json:"name"`
	TransitType string        `json:"transit_type"`
	Location    CoordinateDTO `json:"location"`
	Operator    string        `json:"operator"`
}

type TransitStationResponse struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	TransitType string        `json:"transit_type"`
	Location    CoordinateDTO `json:"location"`
	Operator    string        `json:"operator,omitempty"`
}

func toTransitStationResponse(s *domain.TransitStation) TransitStationResponse {
	return TransitStationResponse{
		ID:          s.ID.String(),
		Name:        s.Name,
		TransitType: s.TransitType,
		Location:    CoordinateDTO{Latitude: s.Location.Lat, Longitude: s.Location.Lon},
		Operator:    s.Operator,
	}
}

type SchoolRequest struct {
	Name         string        `json:"name"`
	SchoolType   string        `json:"school_type"`
	Location     CoordinateDTO `json:"location"`
	Rating       *int          `json:"rating"`
	StudentCount *int          `json:"student_count"`
}

type SchoolResponse struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	SchoolType   string        `json:"school_type"`
	Location     CoordinateDTO `json:"location"`
	Rating       *int          `json:"rating,omitempty"`
	StudentCount *int          `json:"student_count,omitempty"`
}

func toSchoolResponse(s *domain.School) SchoolResponse {
	return SchoolResponse{
		ID:           s.ID.String(),
		Name:         s.Name,
		SchoolType:   s.SchoolType,
		Location:     CoordinateDTO{Latitude: s.Location.Lat, Longitude: s.Location.Lon},
		Rating:       s.Rating,
		StudentCount: s.StudentCount,
	}
}

type NearbyTransitDTO struct {
	Station    TransitStationResponse `json:"station"`
	DistanceKm float64                `json:"distance_km"`
}

type NearbySchoolDTO struct {
	School     SchoolResponse `json:"school"`
	DistanceKm float64        `json:"distance_km"`
}

type NearbyPlacesResponse struct {
	Transit []NearbyTransitDTO `json:"transit"`
	Schools []NearbySchoolDTO  `json:"schools"`
}

func toNearbyPlacesResponse(p *domain.NearbyPlaces) NearbyPlacesResponse {
	resp := NearbyPlacesResponse{
		Transit: make([]NearbyTransitDTO, 0, len(p.Transit)),
		Schools: make([]NearbySchoolDTO, 0, len(p.Schools)),
	}
	for i := range p.Transit {
		resp.Transit = append(resp.Transit, NearbyTransitDTO{
			Station:    toTransitStationResponse(&p.Transit[i].Station),
			DistanceKm: p.Transit[i].DistanceKm,
		})
	}
	for i := range p.Schools {
		resp.Schools = append(resp.Schools, NearbySchoolDTO{
			School:     toSchoolResponse(&p.Schools[i].School),
			DistanceKm: p.Schools[i].DistanceKm,
		})
	}
	return resp
}
