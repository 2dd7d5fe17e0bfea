// Package memory is an in-process Repository backing the service and
// handler tests.
package memory

import (
	"context"
	"encoding/json"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/sports-camp360/camp-service/internal/models"
	"github.com/sports-camp360/camp-service/internal/repositories"
)

type state struct {
	users        []models.User
	classes      []models.Class
	instructors  []models.Instructor
	testimonials []models.Testimonial
	selections   []models.Selection
	payments     []models.Payment
}

func (s state) clone() state {
	return state{
		users:        append([]models.User(nil), s.users...),
		classes:      append([]models.Class(nil), s.classes...),
		instructors:  append([]models.Instructor(nil), s.instructors...),
		testimonials: append([]models.Testimonial(nil), s.testimonials...),
		selections:   append([]models.Selection(nil), s.selections...),
		payments:     append([]models.Payment(nil), s.payments...),
	}
}

// Store keeps every record in insertion order. Lists that are "newest first"
// walk the slices backwards.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex
	data state
	fail error
	now  func() time.Time
}

var _ repositories.Repository = (*Store)(nil)

func NewStore() *Store {
	return &Store{now: time.Now}
}

// FailWith makes every subsequent call return err. Pass nil to recover.
func (s *Store) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = err
}

// SeedTestimonials replaces the testimonial catalog.
func (s *Store) SeedTestimonials(items ...models.Testimonial) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.testimonials = append([]models.Testimonial(nil), items...)
}

func (s *Store) check(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	return s.fail
}

func (s *Store) stamp() time.Time {
	return s.now().UTC()
}

func newID(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

func (s *Store) User() repositories.UserRepository               { return userStore{s} }
func (s *Store) Class() repositories.ClassRepository             { return classStore{s} }
func (s *Store) Instructor() repositories.InstructorRepository   { return instructorStore{s} }
func (s *Store) Testimonial() repositories.TestimonialRepository { return testimonialStore{s} }
func (s *Store) Selection() repositories.SelectionRepository     { return selectionStore{s} }
func (s *Store) Payment() repositories.PaymentRepository         { return paymentStore{s} }

// WithTransaction serializes transactions and restores the previous state
// when fn fails.
func (s *Store) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	if err := s.check(ctx); err != nil {
		s.mu.RUnlock()
		return err
	}
	snapshot := s.data.clone()
	s.mu.RUnlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.data = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.check(ctx)
}

func (s *Store) Close() error { return nil }

// ===== USERS =====

type userStore struct{ *Store }

func (r userStore) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.check(ctx); err != nil {
		return err
	}
	for _, u := range r.data.users {
		if u.Email == user.Email {
			return repositories.ErrDuplicate
		}
	}
	user.ID = newID(user.ID)
	user.CreatedAt = r.stamp()
	user.UpdatedAt = user.CreatedAt
	r.data.users = append(r.data.users, *user)
	return nil
}

func (r userStore) find(match func(models.User) bool) (*models.User, error) {
	for _, u := range r.data.users {
		if match(u) {
			out := u
			return &out, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r userStore) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if err := r.check(ctx); err != nil {
		return nil, err
	}
	return r.find(func(u models.User) bool { return u.ID == id })
}

func (r userStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if err := r.check(ctx); err != nil {
		return nil, err
	}
	return r.find(func(u models.User) bool { return u.Email == email })
}

func (r userStore) List(ctx context.Context, filters repositories.UserFilters) ([]*models.User, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if err := r.check(ctx); err != nil {
		return nil, 0, err
	}

	matched := []*models.User{}
	for i := len(r.data.users) - 1; i >= 0; i-- {
		u := r.data.users[i]
		if filters.Role != nil && u.RoleOrNone() != *filters.Role {
			continue
		}
		matched = append(matched, &u)
	}
	total := int64(len(matched))
	return page(matched, filters.Offset, filters.Limit), total, nil
}

func (r userStore) UpdateRole(ctx context.Context, id string, role models.UserRole) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.check(ctx); err != nil {
		return nil, err
	}
	for i := range r.data.users {
		if r.data.users[i].ID == id {
			assigned := role
			r.data.users[i].Role = &assigned
			r.data.users[i].UpdatedAt = r.stamp()
			out := r.data.users[i]
			return &out, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r userStore) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.check(ctx); err != nil {
		return err
	}
	for i, u := range r.data.users {
		if u.ID == id {
			r.data.users = append(r.data.users[:i], r.data.users[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

// ===== CLASSES =====

type classStore struct{ *Store }

func (r classStore) Create(ctx context.Context, class *models.Class) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.check(ctx); err != nil {
		return err
	}
	class.ID = newID(class.ID)
	if class.Status == "" {
		class.Status = models.ClassPending
	}
	class.CreatedAt = r.stamp()
	class.UpdatedAt = class.CreatedAt
	r.data.classes = append(r.data.classes, *class)
	return nil
}

func (r classStore) GetByID(ctx context.Context, id string) (*models.Class, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if err := r.check(ctx); err != nil {
		return nil, err
	}
	if i := r.index(id); i >= 0 {
		out := r.data.classes[i]
		return &out, nil
	}
	return nil, repositories.ErrNotFound
}

func (r classStore) index(id string) int {
	for i, c := range r.data.classes {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (r classStore) List(ctx context.Context, filters repositories.ClassFilters) ([]*models.Class, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if err := r.check(ctx); err != nil {
		return nil, err
	}

	matched := []*models.Class{}
	for i := len(r.data.classes) - 1; i >= 0; i-- {
		c := r.data.classes[i]
		if filters.Status != nil && c.Status != *filters.Status {
			continue
		}
		if filters.InstructorEmail != nil && c.InstructorEmail != *filters.InstructorEmail {
			continue
		}
		matched = append(matched, &c)
	}

	asc := strings.EqualFold(filters.SortOrder, "asc")
	var less func(a, b *models.Class) bool
	switch filters.SortBy {
	case "enrolled":
		less = func(a, b *models.Class) bool { return a.Enrolled < b.Enrolled }
	case "price":
		less = func(a, b *models.Class) bool { return a.Price < b.Price }
	case "name":
		less = func(a, b *models.Class) bool { return a.Name < b.Name }
	}
	if less != nil {
		sort.SliceStable(matched, func(i, j int) bool {
			if asc {
				return less(matched[i], matched[j])
			}
			return less(matched[j], matched[i])
		})
	} else if asc {
		reverse(matched)
	}
	return page(matched, 0, filters.Limit), nil
}

func (r classStore) mutate(ctx context.Context, id string, fn func(*models.Class) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.check(ctx); err != nil {
		return err
	}
	i := r.index(id)
	if i < 0 {
		return repositories.ErrNotFound
	}
	if err := fn(&r.data.classes[i]); err != nil {
		return err
	}
	r.data.classes[i].UpdatedAt = r.stamp()
	return nil
}

func (r classStore) Update(ctx context.Context, class *models.Class) error {
	return r.mutate(ctx, class.ID, func(c *models.Class) error {
		c.Name = class.Name
		c.Image = class.Image
		c.AvailableSeats = class.AvailableSeats
		c.Price = class.Price
		return nil
	})
}

func (r classStore) UpdateStatus(ctx context.Context, id string, status models.ClassStatus) error {
	return r.mutate(ctx, id, func(c *models.Class) error {
		c.Status = status
		return nil
	})
}

func (r classStore) SetFeedback(ctx context.Context, id string, feedback string) error {
	return r.mutate(ctx, id, func(c *models.Class) error {
		c.Feedback = &feedback
		return nil
	})
}

func (r classStore) ReserveSeat(ctx context.Context, id string) error {
	return r.mutate(ctx, id, func(c *models.Class) error {
		if c.AvailableSeats <= 0 {
			return repositories.ErrNoSeatsAvailable
		}
		c.AvailableSeats--
		c.Enrolled++
		return nil
	})
}

// ===== CATALOG =====

type instructorStore struct{ *Store }

func (r instructorStore) List(ctx context.Context, filters repositories.InstructorFilters) ([]*models.Instructor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if err := r.check(ctx); err != nil {
		return nil, err
	}

	out := []*models.Instructor{}
	for i := len(r.data.instructors) - 1; i >= 0; i-- {
		in := r.data.instructors[i]
		out = append(out, &in)
	}
	asc := strings.EqualFold(filters.SortOrder, "asc")
	switch filters.SortBy {
	case "classes_taken":
		sort.SliceStable(out, func(i, j int) bool {
			if asc {
				return out[i].ClassesTaken < out[j].ClassesTaken
			}
			return out[i].ClassesTaken > out[j].ClassesTaken
		})
	case "name":
		sort.SliceStable(out, func(i, j int) bool {
			if asc {
				return out[i].Name < out[j].Name
			}
			return out[i].Name > out[j].Name
		})
	default:
		if asc {
			reverse(out)
		}
	}
	return page(out, 0, filters.Limit), nil
}

func (r instructorStore) GetByEmail(ctx context.Context, email string) (*models.Instructor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if err := r.check(ctx); err != nil {
		return nil, err
	}
	for _, in := range r.data.instructors {
		if in.Email == email {
			out := in
			return &out, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r instructorStore) Create(ctx context.Context, instructor *models.Instructor) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.check(ctx); err != nil {
		return err
	}
	for _, in := range r.data.instructors {
		if in.Email == instructor.Email {
			return repositories.ErrDuplicate
		}
	}
	instructor.ID = newID(instructor.ID)
	instructor.CreatedAt = r.stamp()
	instructor.UpdatedAt = instructor.CreatedAt
	r.data.instructors = append(r.data.instructors, *instructor)
	return nil
}

func (r instructorStore) update(ctx context.Context, email string, fn func(*models.Instructor) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.check(ctx); err != nil {
		return err
	}
	for i := range r.data.instructors {
		if r.data.instructors[i].Email == email {
			if err := fn(&r.data.instructors[i]); err != nil {
				return err
			}
			r.data.instructors[i].UpdatedAt = r.stamp()
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r instructorStore) AddClass(ctx context.Context, email, className string) error {
	return r.update(ctx, email, func(in *models.Instructor) error {
		names := []string{}
		if len(in.Classes) > 0 {
			if err := json.Unmarshal(in.Classes, &names); err != nil {
				return err
			}
		}
		if slices.Contains(names, className) {
			return nil
		}
		encoded, err := json.Marshal(append(names, className))
		if err != nil {
			return err
		}
		in.Classes = datatypes.JSON(encoded)
		return nil
	})
}

func (r instructorStore) IncrementClassesTaken(ctx context.Context, email string) error {
	return r.update(ctx, email, func(in *models.Instructor) error {
		in.ClassesTaken++
		return nil
	})
}

func (r instructorStore) DeleteByEmail(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.check(ctx); err != nil {
		return err
	}
	for i, in := range r.data.instructors {
		if in.Email == email {
			r.data.instructors = append(r.data.instructors[:i], r.data.instructors[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

type testimonialStore struct{ *Store }

func (r testimonialStore) List(ctx context.Context, limit int) ([]*models.Testimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if err := r.check(ctx); err != nil {
		return nil, err
	}
	out := []*models.Testimonial{}
	for i := len(r.data.testimonials) - 1; i >= 0; i-- {
		t := r.data.testimonials[i]
		out = append(out, &t)
	}
	return page(out, 0, limit), nil
}

// ===== ENROLLMENT =====

type selectionStore struct{ *Store }

func (r selectionStore) Create(ctx context.Context, selection *models.Selection) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.check(ctx); err != nil {
		return err
	}
	for _, s := range r.data.selections {
		if s.StudentEmail == selection.StudentEmail && s.ClassID == selection.ClassID {
			return repositories.ErrDuplicate
		}
	}
	selection.ID = newID(selection.ID)
	selection.CreatedAt = r.stamp()
	r.data.selections = append(r.data.selections, *selection)
	return nil
}

func (r selectionStore) GetByID(ctx context.Context, id string) (*models.Selection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if err := r.check(ctx); err != nil {
		return nil, err
	}
	for _, s := range r.data.selections {
		if s.ID == id {
			out := s
			return &out, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r selectionStore) ListByStudent(ctx context.Context, email string) ([]*models.Selection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if err := r.check(ctx); err != nil {
		return nil, err
	}
	out := []*models.Selection{}
	for i := len(r.data.selections) - 1; i >= 0; i-- {
		if s := r.data.selections[i]; s.StudentEmail == email {
			out = append(out, &s)
		}
	}
	return out, nil
}

func (r selectionStore) Exists(ctx context.Context, email, classID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if err := r.check(ctx); err != nil {
		return false, err
	}
	for _, s := range r.data.selections {
		if s.StudentEmail == email && s.ClassID == classID {
			return true, nil
		}
	}
	return false, nil
}

func (r selectionStore) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.check(ctx); err != nil {
		return err
	}
	for i, s := range r.data.selections {
		if s.ID == id {
			r.data.selections = append(r.data.selections[:i], r.data.selections[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

type paymentStore struct{ *Store }

func (r paymentStore) Create(ctx context.Context, payment *models.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.check(ctx); err != nil {
		return err
	}
	for _, p := range r.data.payments {
		if p.TransactionID == payment.TransactionID {
			return repositories.ErrDuplicate
		}
	}
	payment.ID = newID(payment.ID)
	payment.CreatedAt = r.stamp()
	r.data.payments = append(r.data.payments, *payment)
	return nil
}

func (r paymentStore) ListByEmail(ctx context.Context, email string) ([]*models.Payment, error) {
	return r.list(ctx, func(p models.Payment) bool { return p.Email == email })
}

func (r paymentStore) ListAll(ctx context.Context) ([]*models.Payment, error) {
	return r.list(ctx, func(models.Payment) bool { return true })
}

func (r paymentStore) list(ctx context.Context, match func(models.Payment) bool) ([]*models.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if err := r.check(ctx); err != nil {
		return nil, err
	}
	out := []*models.Payment{}
	for i := len(r.data.payments) - 1; i >= 0; i-- {
		if p := r.data.payments[i]; match(p) {
			out = append(out, &p)
		}
	}
	return out, nil
}

func (r paymentStore) HasPaid(ctx context.Context, email, classID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if err := r.check(ctx); err != nil {
		return false, err
	}
	for _, p := range r.data.payments {
		if p.Email == email && p.ClassID == classID {
			return true, nil
		}
	}
	return false, nil
}

func page[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return items[:0]
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func reverse[T any](items []T) {
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
}
