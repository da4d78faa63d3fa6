package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"roombuddy-be/internal/entity"
	"roombuddy-be/internal/repository/contract"
	"roombuddy-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// In-memory repository fakes backing the service tests. They mimic the
// behaviors the services rely on: nil-on-missing finders, duplicate key
// errors from unique indexes, and ordering guarantees.

type fakeUserRepo struct {
	users     map[uuid.UUID]*entity.User
	providers map[string]*entity.UserProvider
	evTokens  map[uuid.UUID]*entity.EmailVerificationToken
	refresh   map[string]*entity.UserRefreshToken
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:     make(map[uuid.UUID]*entity.User),
		providers: make(map[string]*entity.UserProvider),
		evTokens:  make(map[uuid.UUID]*entity.EmailVerificationToken),
		refresh:   make(map[string]*entity.UserRefreshToken),
	}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return gorm.ErrDuplicatedKey
		}
	}
	cp := *user
	r.users[user.Id] = &cp
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	cp := *user
	r.users[user.Id] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) FindById(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByIds(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error) {
	var result []*entity.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			cp := *u
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (r *fakeUserRepo) ActivateUser(ctx context.Context, userId uuid.UUID) error {
	if u, ok := r.users[userId]; ok {
		u.Status = entity.UserStatusActive
		u.EmailVerified = true
	}
	return nil
}

func (r *fakeUserRepo) GrantPremium(ctx context.Context, userId uuid.UUID, plan entity.SubscriptionPlan, expiry time.Time) error {
	u, ok := r.users[userId]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.IsPremium = true
	u.PremiumExpiry = &expiry
	u.SubscriptionPlan = &plan
	return nil
}

func (r *fakeUserRepo) UpdatePhoto(ctx context.Context, userId uuid.UUID, photoURL string) error {
	if u, ok := r.users[userId]; ok {
		u.PhotoURL = &photoURL
	}
	return nil
}

func (r *fakeUserRepo) SaveProvider(ctx context.Context, provider *entity.UserProvider) error {
	cp := *provider
	r.providers[provider.ProviderName+":"+provider.ProviderUserId] = &cp
	return nil
}

func (r *fakeUserRepo) FindProvider(ctx context.Context, providerName, providerUserId string) (*entity.UserProvider, error) {
	if p, ok := r.providers[providerName+":"+providerUserId]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeUserRepo) CreateEmailVerificationToken(ctx context.Context, token *entity.EmailVerificationToken) error {
	cp := *token
	r.evTokens[token.Id] = &cp
	return nil
}

func (r *fakeUserRepo) FindEmailVerificationToken(ctx context.Context, userId uuid.UUID, token string) (*entity.EmailVerificationToken, error) {
	for _, t := range r.evTokens {
		if t.UserId == userId && t.Token == token {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) DeleteEmailVerificationToken(ctx context.Context, id uuid.UUID) error {
	delete(r.evTokens, id)
	return nil
}

func (r *fakeUserRepo) CreateRefreshToken(ctx context.Context, token *entity.UserRefreshToken) error {
	cp := *token
	r.refresh[token.TokenHash] = &cp
	return nil
}

func (r *fakeUserRepo) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	if t, ok := r.refresh[tokenHash]; ok {
		t.Revoked = true
	}
	return nil
}

type fakePostRepo struct {
	posts map[uuid.UUID]*entity.Post
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[uuid.UUID]*entity.Post)}
}

func (r *fakePostRepo) Create(ctx context.Context, post *entity.Post) error {
	cp := *post
	r.posts[post.Id] = &cp
	return nil
}

func (r *fakePostRepo) Update(ctx context.Context, post *entity.Post) error {
	cp := *post
	r.posts[post.Id] = &cp
	return nil
}

func (r *fakePostRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.posts, id)
	return nil
}

func (r *fakePostRepo) FindById(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	if p, ok := r.posts[id]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *fakePostRepo) FindByIds(ctx context.Context, ids []uuid.UUID) ([]*entity.Post, error) {
	var result []*entity.Post
	for _, id := range ids {
		if p, ok := r.posts[id]; ok {
			cp := *p
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (r *fakePostRepo) FindByUser(ctx context.Context, userId uuid.UUID) ([]*entity.Post, error) {
	var result []*entity.Post
	for _, p := range r.posts {
		if p.UserId == userId {
			cp := *p
			result = append(result, &cp)
		}
	}
	sortPostsNewestFirst(result)
	return result, nil
}

func (r *fakePostRepo) Search(ctx context.Context, filter entity.PostFilter) ([]*entity.Post, error) {
	var result []*entity.Post
	for _, p := range r.posts {
		if !p.IsActive {
			continue
		}
		// Same semantics as the ILIKE substring match in the real query.
		if filter.City != "" && !strings.Contains(strings.ToLower(p.City), strings.ToLower(filter.City)) {
			continue
		}
		if filter.BudgetMin != nil && p.BudgetMin < *filter.BudgetMin {
			continue
		}
		if filter.BudgetMax != nil && p.BudgetMax > *filter.BudgetMax {
			continue
		}
		if filter.Gender != "" && p.Gender != filter.Gender {
			continue
		}
		cp := *p
		result = append(result, &cp)
	}
	sortPostsNewestFirst(result)

	if filter.Offset > 0 {
		if filter.Offset >= len(result) {
			return nil, nil
		}
		result = result[filter.Offset:]
	}
	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result, nil
}

func sortPostsNewestFirst(posts []*entity.Post) {
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}

type fakeConnectionRepo struct {
	requests map[uuid.UUID]*entity.ConnectionRequest
}

func newFakeConnectionRepo() *fakeConnectionRepo {
	return &fakeConnectionRepo{requests: make(map[uuid.UUID]*entity.ConnectionRequest)}
}

func (r *fakeConnectionRepo) Create(ctx context.Context, request *entity.ConnectionRequest) error {
	for _, existing := range r.requests {
		if existing.SenderId == request.SenderId && existing.PostId == request.PostId {
			return gorm.ErrDuplicatedKey
		}
	}
	cp := *request
	r.requests[request.Id] = &cp
	return nil
}

func (r *fakeConnectionRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RequestStatus) error {
	req, ok := r.requests[id]
	if !ok || req.Status != entity.RequestStatusPending {
		return gorm.ErrRecordNotFound
	}
	req.Status = status
	req.UpdatedAt = time.Now()
	return nil
}

func (r *fakeConnectionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.requests, id)
	return nil
}

func (r *fakeConnectionRepo) FindById(ctx context.Context, id uuid.UUID) (*entity.ConnectionRequest, error) {
	if req, ok := r.requests[id]; ok {
		cp := *req
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeConnectionRepo) FindBySenderAndPost(ctx context.Context, senderId, postId uuid.UUID) (*entity.ConnectionRequest, error) {
	for _, req := range r.requests {
		if req.SenderId == senderId && req.PostId == postId {
			cp := *req
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeConnectionRepo) ListByReceiver(ctx context.Context, receiverId uuid.UUID, status entity.RequestStatus) ([]*entity.ConnectionRequest, error) {
	var result []*entity.ConnectionRequest
	for _, req := range r.requests {
		if req.ReceiverId == receiverId && req.Status == status {
			cp := *req
			result = append(result, &cp)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *fakeConnectionRepo) ListReceived(ctx context.Context, receiverId uuid.UUID) ([]*entity.ConnectionRequest, error) {
	var result []*entity.ConnectionRequest
	for _, req := range r.requests {
		if req.ReceiverId == receiverId {
			cp := *req
			result = append(result, &cp)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *fakeConnectionRepo) ListBySender(ctx context.Context, senderId uuid.UUID) ([]*entity.ConnectionRequest, error) {
	var result []*entity.ConnectionRequest
	for _, req := range r.requests {
		if req.SenderId == senderId {
			cp := *req
			result = append(result, &cp)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *fakeConnectionRepo) ListAcceptedFor(ctx context.Context, userId uuid.UUID) ([]*entity.ConnectionRequest, error) {
	var result []*entity.ConnectionRequest
	for _, req := range r.requests {
		if req.Status == entity.RequestStatusAccepted && (req.SenderId == userId || req.ReceiverId == userId) {
			cp := *req
			result = append(result, &cp)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})
	return result, nil
}

type fakePaymentRepo struct {
	payments map[uuid.UUID]*entity.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[uuid.UUID]*entity.Payment)}
}

func (r *fakePaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	cp := *payment
	r.payments[payment.Id] = &cp
	return nil
}

func (r *fakePaymentRepo) FindByOrderId(ctx context.Context, orderId string) (*entity.Payment, error) {
	for _, p := range r.payments {
		if p.OrderId == orderId {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakePaymentRepo) MarkStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, paymentId *string) error {
	p, ok := r.payments[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Status = status
	if paymentId != nil {
		p.PaymentId = paymentId
	}
	p.UpdatedAt = time.Now()
	return nil
}

func (r *fakePaymentRepo) ListByUser(ctx context.Context, userId uuid.UUID) ([]*entity.Payment, error) {
	var result []*entity.Payment
	for _, p := range r.payments {
		if p.UserId == userId {
			cp := *p
			result = append(result, &cp)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// fakeUnitOfWork serves the same repositories with or without a
// transaction; Begin/Commit/Rollback just track call counts.
type fakeUnitOfWork struct {
	users       *fakeUserRepo
	posts       *fakePostRepo
	connections *fakeConnectionRepo
	payments    *fakePaymentRepo

	// connOverride lets a test interpose on the connection repository.
	connOverride contract.ConnectionRepository

	begins    int
	commits   int
	rollbacks int
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { u.begins++; return nil }
func (u *fakeUnitOfWork) Commit() error                   { u.commits++; return nil }
func (u *fakeUnitOfWork) Rollback() error                 { u.rollbacks++; return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository             { return u.users }
func (u *fakeUnitOfWork) PostRepository() contract.PostRepository             { return u.posts }
func (u *fakeUnitOfWork) ConnectionRepository() contract.ConnectionRepository {
	if u.connOverride != nil {
		return u.connOverride
	}
	return u.connections
}
func (u *fakeUnitOfWork) PaymentRepository() contract.PaymentRepository       { return u.payments }

type fakeFactory struct {
	uow *fakeUnitOfWork
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{
		uow: &fakeUnitOfWork{
			users:       newFakeUserRepo(),
			posts:       newFakePostRepo(),
			connections: newFakeConnectionRepo(),
			payments:    newFakePaymentRepo(),
		},
	}
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func premiumUser(name string) *entity.User {
	expiry := time.Now().AddDate(0, 6, 0)
	plan := entity.PlanSixMonths
	return &entity.User{
		Id:               uuid.New(),
		Email:            strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com",
		FullName:         name,
		Role:             entity.UserRoleUser,
		Status:           entity.UserStatusActive,
		EmailVerified:    true,
		City:             "Bangalore",
		Age:              25,
		Gender:           "male",
		ProfileCompleted: true,
		IsPremium:        true,
		PremiumExpiry:    &expiry,
		SubscriptionPlan: &plan,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
}

func regularUser(name string) *entity.User {
	return &entity.User{
		Id:               uuid.New(),
		Email:            strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com",
		FullName:         name,
		Role:             entity.UserRoleUser,
		Status:           entity.UserStatusActive,
		EmailVerified:    true,
		City:             "Mumbai",
		Age:              27,
		Gender:           "female",
		Phone:            "+919800000000",
		ProfileCompleted: true,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
}

func activePost(owner *entity.User) *entity.Post {
	return &entity.Post{
		Id:          uuid.New(),
		UserId:      owner.Id,
		Description: "Looking for a flatmate near the office.",
		City:        owner.City,
		BudgetMin:   10000,
		BudgetMax:   20000,
		Gender:      "any",
		RoomType:    "private",
		OwnerName:   owner.FullName,
		OwnerAge:    owner.Age,
		OwnerGender: owner.Gender,
		OwnerPhone:  owner.Phone,
		IsActive:    true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}
