package db

import (
	"time"

	"gorm.io/datatypes"
)

// ---------------------------------------------------------------------
// Enum types
// ---------------------------------------------------------------------

type UserRoleEnum string

const (
	UserRoleFreelance UserRoleEnum = "freelance"
	UserRoleClient    UserRoleEnum = "client"
	UserRoleBoth      UserRoleEnum = "both"
)

type AuthMethodEnum string

const (
	AuthMethodOAuth AuthMethodEnum = "oauth"
	AuthMethodPhone AuthMethodEnum = "phone"
)

// Mission statuses are display labels, not an enforced state machine.
// Clients may write labels outside this set.
type MissionStatusEnum string

const (
	MissionStatusOpen            MissionStatusEnum = "open"
	MissionStatusStillRelevant   MissionStatusEnum = "still_relevant"
	MissionStatusSomeoneSelected MissionStatusEnum = "someone_selected"
	MissionStatusInProgress      MissionStatusEnum = "in_progress"
	MissionStatusCompleted       MissionStatusEnum = "completed"
	MissionStatusCancelled       MissionStatusEnum = "cancelled"
)

type ApplicationStatusEnum string

const (
	ApplicationStatusPending   ApplicationStatusEnum = "pending"
	ApplicationStatusAccepted  ApplicationStatusEnum = "accepted"
	ApplicationStatusRejected  ApplicationStatusEnum = "rejected"
	ApplicationStatusWithdrawn ApplicationStatusEnum = "withdrawn"
)

type BoostTargetEnum string

const (
	BoostTargetUser    BoostTargetEnum = "user"
	BoostTargetMission BoostTargetEnum = "mission"
)

// ---------------------------------------------------------------------
// Models
// ---------------------------------------------------------------------

// User represents the users table. A user authenticates either through the
// OAuth provider (email identity) or with phone number + password, never both.
type User struct {
	ID                string         `gorm:"primaryKey;column:id" json:"id"`
	Email             *string        `gorm:"column:email;size:255;unique" json:"email,omitempty"`
	FirstName         string         `gorm:"column:first_name;size:100" json:"firstName,omitempty"`
	LastName          string         `gorm:"column:last_name;size:100" json:"lastName,omitempty"`
	ProfileImageURL   string         `gorm:"column:profile_image_url;size:500" json:"profileImageUrl,omitempty"`
	PhoneNumber       *string        `gorm:"column:phone_number;size:20;unique" json:"phoneNumber,omitempty"`
	Password          *string        `gorm:"column:password" json:"-"`
	AuthMethod        AuthMethodEnum `gorm:"column:auth_method;size:20" json:"authMethod"`
	FullName          string         `gorm:"column:full_name" json:"fullName,omitempty"`
	Role              UserRoleEnum   `gorm:"column:role;not null" json:"role"`
	Bio               string         `gorm:"column:bio;type:text" json:"bio,omitempty"`
	Skills            []string       `gorm:"column:skills;type:text;serializer:json" json:"skills"`
	Location          string         `gorm:"column:location;size:100" json:"location,omitempty"`
	Avatar            string         `gorm:"column:avatar;type:text" json:"avatar,omitempty"`
	CvURL             string         `gorm:"column:cv_url;type:text" json:"cvUrl,omitempty"`
	Rating            int            `gorm:"column:rating" json:"rating"`
	ReviewCount       int            `gorm:"column:review_count" json:"reviewCount"`
	CompletedMissions int            `gorm:"column:completed_missions" json:"completedMissions"`
	ResponseRate      int            `gorm:"column:response_rate" json:"responseRate"`
	IsBoosted         bool           `gorm:"column:is_boosted" json:"isBoosted"`
	BoostExpiresAt    *time.Time     `gorm:"column:boost_expires_at" json:"boostExpiresAt,omitempty"`
	CreatedAt         time.Time      `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt         time.Time      `gorm:"column:updated_at" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// BoostActive reports whether the user's boost is in effect at the given
// instant. The stored flag alone is not authoritative: a boost whose expiry
// has passed no longer counts.
func (u *User) BoostActive(now time.Time) bool {
	return u.IsBoosted && (u.BoostExpiresAt == nil || u.BoostExpiresAt.After(now))
}

// Mission represents the missions table.
type Mission struct {
	ID              string            `gorm:"primaryKey;column:id" json:"id"`
	ClientID        string            `gorm:"column:client_id;not null;index" json:"clientId"`
	Title           string            `gorm:"column:title;type:text;not null" json:"title"`
	Description     string            `gorm:"column:description;type:text;not null" json:"description"`
	Category        string            `gorm:"column:category;size:100;not null" json:"category"`
	CustomCategory  string            `gorm:"column:custom_category;size:100" json:"customCategory,omitempty"`
	Budget          int               `gorm:"column:budget;not null" json:"budget"`
	BudgetType      string            `gorm:"column:budget_type;size:20;default:fixed" json:"budgetType"`
	Location        *string           `gorm:"column:location;size:100" json:"location,omitempty"`
	IsRemote        bool              `gorm:"column:is_remote" json:"isRemote"`
	Duration        string            `gorm:"column:duration;size:50" json:"duration,omitempty"`
	SkillsRequired  []string          `gorm:"column:skills_required;type:text;serializer:json" json:"skillsRequired"`
	Status          MissionStatusEnum `gorm:"column:status;not null" json:"status"`
	ApplicantsCount int               `gorm:"column:applicants_count" json:"applicantsCount"`
	IsBoosted       bool              `gorm:"column:is_boosted" json:"isBoosted"`
	BoostExpiresAt  *time.Time        `gorm:"column:boost_expires_at" json:"boostExpiresAt,omitempty"`
	CreatedAt       time.Time         `gorm:"column:created_at" json:"createdAt"`
	UpdatedAt       time.Time         `gorm:"column:updated_at" json:"updatedAt"`
}

func (Mission) TableName() string {
	return "missions"
}

// BoostActive reports whether the mission's boost is in effect at the given
// instant.
func (m *Mission) BoostActive(now time.Time) bool {
	return m.IsBoosted && (m.BoostExpiresAt == nil || m.BoostExpiresAt.After(now))
}

// Application represents the applications table: one freelancer's bid on a
// mission.
type Application struct {
	ID             string                `gorm:"primaryKey;column:id" json:"id"`
	MissionID      string                `gorm:"column:mission_id;not null;index" json:"missionId"`
	FreelancerID   string                `gorm:"column:freelancer_id;not null;index" json:"freelancerId"`
	CoverLetter    string                `gorm:"column:cover_letter;type:text" json:"coverLetter,omitempty"`
	ProposedBudget *int                  `gorm:"column:proposed_budget" json:"proposedBudget,omitempty"`
	Status         ApplicationStatusEnum `gorm:"column:status;not null" json:"status"`
	CreatedAt      time.Time             `gorm:"column:created_at" json:"createdAt"`
}

func (Application) TableName() string {
	return "applications"
}

// Favorite represents the favorites table. The row's existence is the signal.
type Favorite struct {
	ID        string    `gorm:"primaryKey;column:id" json:"id"`
	UserID    string    `gorm:"column:user_id;not null;index" json:"userId"`
	MissionID string    `gorm:"column:mission_id;not null;index" json:"missionId"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Favorite) TableName() string {
	return "favorites"
}

// Review represents the reviews table. Inserting a review recomputes the
// reviewee's aggregate rating and review count.
type Review struct {
	ID         string    `gorm:"primaryKey;column:id" json:"id"`
	MissionID  string    `gorm:"column:mission_id;not null;index" json:"missionId"`
	ReviewerID string    `gorm:"column:reviewer_id;not null" json:"reviewerId"`
	RevieweeID string    `gorm:"column:reviewee_id;not null;index" json:"revieweeId"`
	Rating     int       `gorm:"column:rating;not null" json:"rating"`
	Comment    string    `gorm:"column:comment;type:text" json:"comment,omitempty"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Review) TableName() string {
	return "reviews"
}

// Boost represents the boosts table, a ledger of applied boosts. Checkout
// happens off-platform and activation is a manual admin action, so payment
// status is recorded as "manual".
type Boost struct {
	ID            string          `gorm:"primaryKey;column:id" json:"id"`
	UserID        string          `gorm:"column:user_id;not null" json:"userId"`
	TargetID      string          `gorm:"column:target_id;not null" json:"targetId"`
	TargetType    BoostTargetEnum `gorm:"column:target_type;size:20;not null" json:"targetType"`
	Duration      int             `gorm:"column:duration;not null" json:"duration"`
	Price         int             `gorm:"column:price;not null" json:"price"`
	PaymentStatus string          `gorm:"column:payment_status;size:20" json:"paymentStatus"`
	ExpiresAt     time.Time       `gorm:"column:expires_at;not null" json:"expiresAt"`
	CreatedAt     time.Time       `gorm:"column:created_at" json:"createdAt"`
}

func (Boost) TableName() string {
	return "boosts"
}

// Session represents the sessions table. The payload is an opaque jsonb blob
// owned by the session service.
type Session struct {
	Sid       string         `gorm:"primaryKey;column:sid" json:"sid"`
	Sess      datatypes.JSON `gorm:"column:sess" json:"sess"`
	Expire    time.Time      `gorm:"column:expire;not null;index" json:"expire"`
	CreatedAt time.Time      `gorm:"column:created_at" json:"createdAt"`
}

func (Session) TableName() string {
	return "sessions"
}

// Message represents the messages table, an audit row per mutating API call.
type Message struct {
	ID          string    `gorm:"primaryKey;column:id" json:"id"`
	MessageTime int64     `gorm:"column:message_time;not null" json:"message_time"`
	HTTPMethod  string    `gorm:"column:http_method" json:"http_method"`
	RawEndpoint string    `gorm:"column:raw_endpoint" json:"raw_endpoint"`
	HTTPBody    string    `gorm:"column:http_body;type:text" json:"http_body"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Message) TableName() string {
	return "messages"
}
