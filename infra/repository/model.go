package repository

import (
	"time"

	"github.com/amirasaad/tripool/pkg/domain"
)

// User represents a user record in the database.
type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement:false"`
	Pseudo       string `gorm:"uniqueIndex;not null;size:50"`
	Mail         string `gorm:"uniqueIndex;not null;size:255"`
	Password     string `gorm:"not null"`
	Role         string `gorm:"size:20;not null"`
	UserType     string `gorm:"size:20;not null"`
	Age          int
	Description  string
	PhoneNumber  string `gorm:"size:30"`
	Note         float64
	CreationDate time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string { return "users" }

// Friendship represents one directed friendship row.
type Friendship struct {
	UserID      int64  `gorm:"primaryKey;autoIncrement:false"`
	FriendName  string `gorm:"primaryKey;size:50"`
	IsRequested bool   `gorm:"not null"`
	IsWaiting   bool   `gorm:"not null"`
	StartDate   time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Friendship) TableName() string { return "friendships" }

// Trip represents a trip record.
type Trip struct {
	ID                int64  `gorm:"primaryKey;autoIncrement:false"`
	Name              string `gorm:"uniqueIndex;not null;size:100"`
	Price             float64
	StartDate         time.Time
	EndDate           time.Time
	ValidityDate      time.Time
	NumberMaxOfPeople int `gorm:"not null"`
	Description       string
	Organizer         string `gorm:"size:50;not null"`
	Location          string
	Note              float64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (Trip) TableName() string { return "trips" }

// TripParticipant represents a participation row.
type TripParticipant struct {
	TripID          int64  `gorm:"primaryKey;autoIncrement:false"`
	UserPseudo      string `gorm:"primaryKey;size:50"`
	HasParticipated bool   `gorm:"not null"`
	TripNote        float64
	ValidationDate  time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (TripParticipant) TableName() string { return "trip_participants" }

// Pot represents a pot record.
type Pot struct {
	ID                 int64  `gorm:"primaryKey;autoIncrement:false"`
	TripID             int64  `gorm:"index"`
	Name               string `gorm:"size:120;not null"`
	Organizer          string `gorm:"size:50"`
	Mode               int    `gorm:"not null"`
	CurrentAmount      float64
	TargetAmount       float64
	StartDate          time.Time
	EndDate            time.Time
	ValidityDate       time.Time
	Description        string
	IsCancelled        bool `gorm:"not null"`
	CancellationReason string
	CancellationDate   *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (Pot) TableName() string { return "pots" }

// PotUser represents a member contribution row.
type PotUser struct {
	PotID        int64 `gorm:"primaryKey;autoIncrement:false"`
	UserID       int64 `gorm:"primaryKey;autoIncrement:false"`
	Amount       float64
	TargetAmount float64
	HasPayed     bool `gorm:"not null"`
	HasCancelled bool `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (PotUser) TableName() string { return "pot_users" }

// UserTrip represents the per-user trip row.
type UserTrip struct {
	UserID          int64  `gorm:"primaryKey;autoIncrement:false"`
	TripName        string `gorm:"primaryKey;size:100"`
	HasParticipated bool   `gorm:"not null"`
	HasOrganized    bool   `gorm:"not null"`
	TripAmount      float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (UserTrip) TableName() string { return "user_trips" }

// Models lists every persisted model, in dependency order, for AutoMigrate.
func Models() []any {
	return []any{&User{}, &Friendship{}, &Trip{}, &TripParticipant{}, &Pot{}, &PotUser{}, &UserTrip{}}
}

func newUserModel(u *domain.User) User {
	return User{
		ID:           u.ID,
		Pseudo:       u.Pseudo,
		Mail:         u.Mail,
		Password:     u.Password,
		Role:         string(u.Role),
		UserType:     string(u.UserType),
		Age:          u.Age,
		Description:  u.Description,
		PhoneNumber:  u.PhoneNumber,
		Note:         u.Note,
		CreationDate: u.CreationDate,
	}
}

func (m *User) toDomain() *domain.User {
	return &domain.User{
		ID:           m.ID,
		Pseudo:       m.Pseudo,
		Mail:         m.Mail,
		Password:     m.Password,
		Role:         domain.Role(m.Role),
		UserType:     domain.UserType(m.UserType),
		Age:          m.Age,
		Description:  m.Description,
		PhoneNumber:  m.PhoneNumber,
		Note:         m.Note,
		CreationDate: m.CreationDate,
	}
}

func newFriendshipModel(f *domain.Friendship) Friendship {
	return Friendship{
		UserID:      f.UserID,
		FriendName:  f.FriendName,
		IsRequested: f.IsRequested,
		IsWaiting:   f.IsWaiting,
		StartDate:   f.StartDate,
	}
}

func (m *Friendship) toDomain() *domain.Friendship {
	return &domain.Friendship{
		UserID:      m.UserID,
		FriendName:  m.FriendName,
		IsRequested: m.IsRequested,
		IsWaiting:   m.IsWaiting,
		StartDate:   m.StartDate,
	}
}

func newTripModel(t *domain.Trip) Trip {
	return Trip{
		ID:                t.ID,
		Name:              t.Name,
		Price:             t.Price,
		StartDate:         t.StartDate,
		EndDate:           t.EndDate,
		ValidityDate:      t.ValidityDate,
		NumberMaxOfPeople: t.NumberMaxOfPeople,
		Description:       t.Description,
		Organizer:         t.Organizer,
		Location:          t.Location,
		Note:              t.Note,
	}
}

func (m *Trip) toDomain() *domain.Trip {
	return &domain.Trip{
		ID:                m.ID,
		Name:              m.Name,
		Price:             m.Price,
		StartDate:         m.StartDate,
		EndDate:           m.EndDate,
		ValidityDate:      m.ValidityDate,
		NumberMaxOfPeople: m.NumberMaxOfPeople,
		Description:       m.Description,
		Organizer:         m.Organizer,
		Location:          m.Location,
		Note:              m.Note,
	}
}

func newTripParticipantModel(p *domain.TripParticipant) TripParticipant {
	return TripParticipant{
		TripID:          p.TripID,
		UserPseudo:      p.UserPseudo,
		HasParticipated: p.HasParticipated,
		TripNote:        p.TripNote,
		ValidationDate:  p.ValidationDate,
	}
}

func (m *TripParticipant) toDomain() *domain.TripParticipant {
	return &domain.TripParticipant{
		TripID:          m.TripID,
		UserPseudo:      m.UserPseudo,
		HasParticipated: m.HasParticipated,
		TripNote:        m.TripNote,
		ValidationDate:  m.ValidationDate,
	}
}

func newPotModel(p *domain.Pot) Pot {
	m := Pot{
		ID:                 p.ID,
		TripID:             p.TripID,
		Name:               p.Name,
		Organizer:          p.Organizer,
		Mode:               int(p.Mode),
		CurrentAmount:      p.CurrentAmount,
		TargetAmount:       p.TargetAmount,
		StartDate:          p.StartDate,
		EndDate:            p.EndDate,
		ValidityDate:       p.ValidityDate,
		Description:        p.Description,
		IsCancelled:        p.IsCancelled,
		CancellationReason: p.CancellationReason,
	}
	if !p.CancellationDate.IsZero() {
		date := p.CancellationDate
		m.CancellationDate = &date
	}
	return m
}

func (m *Pot) toDomain() *domain.Pot {
	p := &domain.Pot{
		ID:                 m.ID,
		TripID:             m.TripID,
		Name:               m.Name,
		Organizer:          m.Organizer,
		Mode:               domain.PotMode(m.Mode),
		CurrentAmount:      m.CurrentAmount,
		TargetAmount:       m.TargetAmount,
		StartDate:          m.StartDate,
		EndDate:            m.EndDate,
		ValidityDate:       m.ValidityDate,
		Description:        m.Description,
		IsCancelled:        m.IsCancelled,
		CancellationReason: m.CancellationReason,
	}
	if m.CancellationDate != nil {
		p.CancellationDate = *m.CancellationDate
	}
	return p
}

func newPotUserModel(pu *domain.PotUser) PotUser {
	return PotUser{
		PotID:        pu.PotID,
		UserID:       pu.UserID,
		Amount:       pu.Amount,
		TargetAmount: pu.TargetAmount,
		HasPayed:     pu.HasPayed,
		HasCancelled: pu.HasCancelled,
	}
}

func (m *PotUser) toDomain() *domain.PotUser {
	return &domain.PotUser{
		PotID:        m.PotID,
		UserID:       m.UserID,
		Amount:       m.Amount,
		TargetAmount: m.TargetAmount,
		HasPayed:     m.HasPayed,
		HasCancelled: m.HasCancelled,
	}
}

func newUserTripModel(ut *domain.UserTrip) UserTrip {
	return UserTrip{
		UserID:          ut.UserID,
		TripName:        ut.TripName,
		HasParticipated: ut.HasParticipated,
		HasOrganized:    ut.HasOrganized,
		TripAmount:      ut.TripAmount,
	}
}

func (m *UserTrip) toDomain() *domain.UserTrip {
	return &domain.UserTrip{
		UserID:          m.UserID,
		TripName:        m.TripName,
		HasParticipated: m.HasParticipated,
		HasOrganized:    m.HasOrganized,
		TripAmount:      m.TripAmount,
	}
}
