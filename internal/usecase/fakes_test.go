package usecase

import (
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"go-doctors-portal/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var errStore = errors.New("store unavailable")

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// newTestDB returns a gorm handle that the fake repositories ignore. Any SQL
// reaching it fails the sqlmock expectations.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

type fakeServiceRepo struct {
	services []entity.Service
	err      error
	calls    int
}

func (f *fakeServiceRepo) FindAll(db *gorm.DB) ([]entity.Service, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := make([]entity.Service, len(f.services))
	copy(out, f.services)
	return out, nil
}

func (f *fakeServiceRepo) FindByName(db *gorm.DB, name string) (*entity.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.services {
		if f.services[i].Name == name {
			s := f.services[i]
			return &s, nil
		}
	}
	return nil, nil
}

// fakeBookingRepo enforces the patient/treatment/date uniqueness the way the
// database index does.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings []entity.Booking
	err      error
	// beforeCreate runs inside Create before the uniqueness check, to stage
	// a competing insert.
	beforeCreate func(*fakeBookingRepo)
}

func (f *fakeBookingRepo) Create(db *gorm.DB, booking *entity.Booking) error {
	if f.beforeCreate != nil {
		hook := f.beforeCreate
		f.beforeCreate = nil
		hook(f)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for _, b := range f.bookings {
		if b.Patient == booking.Patient && b.Treatment == booking.Treatment && b.Date == booking.Date {
			return uniqueViolation(entity.BookingUniqueIndex)
		}
	}
	booking.ID = uuid.New()
	booking.CreatedAt = time.Now()
	f.bookings = append(f.bookings, *booking)
	return nil
}

func (f *fakeBookingRepo) insert(b entity.Booking) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	f.bookings = append(f.bookings, b)
}

func (f *fakeBookingRepo) FindByDate(db *gorm.DB, date string) ([]entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.Booking
	for _, b := range f.bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) FindByPatient(db *gorm.DB, patient string) ([]entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []entity.Booking
	for _, b := range f.bookings {
		if b.Patient == patient {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) FindByPatientTreatmentDate(db *gorm.DB, patient, treatment, date string) (*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, b := range f.bookings {
		if b.Patient == patient && b.Treatment == treatment && b.Date == date {
			found := b
			return &found, nil
		}
	}
	return nil, nil
}

type fakeUserRepo struct {
	users []entity.User
	err   error
}

func (f *fakeUserRepo) FindAll(db *gorm.DB) ([]entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]entity.User(nil), f.users...), nil
}

func (f *fakeUserRepo) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].Email == email {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Upsert(db *gorm.DB, user *entity.User, fields []string) (*entity.UpdateOutcome, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].Email != user.Email {
			continue
		}
		for _, field := range fields {
			switch field {
			case "name":
				f.users[i].Name = user.Name
			case "profile":
				f.users[i].Profile = user.Profile
			}
		}
		*user = f.users[i]
		return &entity.UpdateOutcome{MatchedCount: 1, ModifiedCount: 1}, nil
	}

	user.ID = uuid.New()
	user.Role = entity.RoleRegular
	f.users = append(f.users, *user)
	id := user.ID
	return &entity.UpdateOutcome{UpsertedCount: 1, UpsertedID: &id}, nil
}

func (f *fakeUserRepo) UpdateRole(db *gorm.DB, email string, role entity.Role) (*entity.UpdateOutcome, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.users {
		if f.users[i].Email != email {
			continue
		}
		outcome := &entity.UpdateOutcome{MatchedCount: 1}
		if f.users[i].Role != role {
			f.users[i].Role = role
			outcome.ModifiedCount = 1
		}
		return outcome, nil
	}
	return &entity.UpdateOutcome{}, nil
}

type fakeDoctorRepo struct {
	doctors []entity.Doctor
	err     error
}

func (f *fakeDoctorRepo) FindAll(db *gorm.DB) ([]entity.Doctor, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]entity.Doctor(nil), f.doctors...), nil
}

func (f *fakeDoctorRepo) Create(db *gorm.DB, doctor *entity.Doctor) error {
	if f.err != nil {
		return f.err
	}
	for _, d := range f.doctors {
		if d.Email == doctor.Email {
			return uniqueViolation("doctors_email_key")
		}
	}
	doctor.ID = uuid.New()
	f.doctors = append(f.doctors, *doctor)
	return nil
}

func (f *fakeDoctorRepo) DeleteByEmail(db *gorm.DB, email string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	for i, d := range f.doctors {
		if d.Email == email {
			f.doctors = append(f.doctors[:i], f.doctors[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeAuditLogRepo struct {
	logs  []entity.AuditLog
	err   error
	limit int
}

func (f *fakeAuditLogRepo) Create(db *gorm.DB, log *entity.AuditLog) error {
	if f.err != nil {
		return f.err
	}
	log.ID = int64(len(f.logs) + 1)
	f.logs = append(f.logs, *log)
	return nil
}

func (f *fakeAuditLogRepo) FindAll(db *gorm.DB, limit int) ([]entity.AuditLog, error) {
	f.limit = limit
	if f.err != nil {
		return nil, f.err
	}
	return append([]entity.AuditLog(nil), f.logs...), nil
}
