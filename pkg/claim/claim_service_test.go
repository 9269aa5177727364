package claim

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
)

// stubClaimRepo mimics the repository's atomic claim: the status flip and
// claim insert happen under one lock, so only one caller can win an item.
type stubClaimRepo struct {
	mu     sync.Mutex
	status map[uuid.UUID]string
	claims []*entities.Claim
}

func newStubClaimRepo() *stubClaimRepo {
	return &stubClaimRepo{status: make(map[uuid.UUID]string)}
}

func (r *stubClaimRepo) addItem(id uuid.UUID, status string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status[id] = status
}

func (r *stubClaimRepo) ClaimFoodItem(_ context.Context, foodItemID, recipientID uuid.UUID) (*entities.Claim, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.status[foodItemID] != domain.FoodStatusAvailable {
		return nil, domain.ErrFoodItemNotAvailable
	}
	r.status[foodItemID] = domain.FoodStatusClaimed

	claim := &entities.Claim{
		ID:          uuid.New(),
		FoodItemID:  foodItemID,
		RecipientID: recipientID,
		Status:      domain.ClaimStatusPending,
	}
	r.claims = append(r.claims, claim)
	return claim, nil
}

func (r *stubClaimRepo) GetClaimsByRecipient(_ context.Context, recipientID string) ([]*entities.Claim, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entities.Claim
	for _, c := range r.claims {
		if c.RecipientID.String() == recipientID {
			out = append(out, c)
		}
	}
	return out, nil
}

// stubFoodRepo returns not-found for everything; the notification path
// gives up quietly and nothing is sent.
type stubFoodRepo struct{}

func (stubFoodRepo) CreateFoodItem(context.Context, *entities.FoodItem) error { return nil }
func (stubFoodRepo) GetFoodItemByID(context.Context, string) (*entities.FoodItem, error) {
	return nil, gorm.ErrRecordNotFound
}
func (stubFoodRepo) GetAvailableFoodItems(context.Context, string) ([]*entities.FoodItem, error) {
	return nil, nil
}
func (stubFoodRepo) GetFoodItemsByDonor(context.Context, string) ([]*entities.FoodItem, error) {
	return nil, nil
}
func (stubFoodRepo) UpdateFoodItem(context.Context, *entities.FoodItem) error { return nil }

type stubUserRepo struct{}

func (stubUserRepo) CreateUser(context.Context, *entities.User) error { return nil }
func (stubUserRepo) GetUserByEmail(context.Context, string) (*entities.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (stubUserRepo) GetUserByID(context.Context, string) (*entities.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (stubUserRepo) CheckEmailExists(context.Context, string) (bool, error) { return false, nil }

func newTestService(repo *stubClaimRepo) ClaimService {
	return NewClaimService(repo, stubFoodRepo{}, stubUserRepo{})
}

func TestClaimFoodItem_Succeeds(t *testing.T) {
	repo := newStubClaimRepo()
	svc := newTestService(repo)

	itemID := uuid.New()
	repo.addItem(itemID, domain.FoodStatusAvailable)
	recipientID := uuid.New().String()

	res, err := svc.ClaimFoodItem(context.Background(), itemID.String(), recipientID)
	if err != nil {
		t.Fatalf("ClaimFoodItem returned error: %v", err)
	}
	if res.FoodItemID != itemID.String() {
		t.Fatalf("unexpected food item id: %s", res.FoodItemID)
	}
	if res.Status != domain.ClaimStatusPending {
		t.Fatalf("expected pending claim, got %s", res.Status)
	}
}

func TestClaimFoodItem_SecondClaimFails(t *testing.T) {
	repo := newStubClaimRepo()
	svc := newTestService(repo)

	itemID := uuid.New()
	repo.addItem(itemID, domain.FoodStatusAvailable)

	if _, err := svc.ClaimFoodItem(context.Background(), itemID.String(), uuid.New().String()); err != nil {
		t.Fatalf("first claim returned error: %v", err)
	}

	_, err := svc.ClaimFoodItem(context.Background(), itemID.String(), uuid.New().String())
	if !errors.Is(err, domain.ErrFoodItemNotAvailable) {
		t.Fatalf("expected ErrFoodItemNotAvailable, got %v", err)
	}
}

func TestClaimFoodItem_UnknownItem(t *testing.T) {
	repo := newStubClaimRepo()
	svc := newTestService(repo)

	_, err := svc.ClaimFoodItem(context.Background(), uuid.New().String(), uuid.New().String())
	if !errors.Is(err, domain.ErrFoodItemNotAvailable) {
		t.Fatalf("expected ErrFoodItemNotAvailable, got %v", err)
	}
}

func TestClaimFoodItem_MalformedID(t *testing.T) {
	repo := newStubClaimRepo()
	svc := newTestService(repo)

	_, err := svc.ClaimFoodItem(context.Background(), "not-a-uuid", uuid.New().String())
	if !errors.Is(err, domain.ErrFoodItemNotAvailable) {
		t.Fatalf("expected ErrFoodItemNotAvailable, got %v", err)
	}
}

func TestClaimFoodItem_ConcurrentClaimsSingleWinner(t *testing.T) {
	repo := newStubClaimRepo()
	svc := newTestService(repo)

	itemID := uuid.New()
	repo.addItem(itemID, domain.FoodStatusAvailable)

	const attempts = 16
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.ClaimFoodItem(context.Background(), itemID.String(), uuid.New().String())
		}(i)
	}
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		switch {
		case err == nil:
			won++
		case errors.Is(err, domain.ErrFoodItemNotAvailable):
			lost++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if won != 1 {
		t.Fatalf("expected exactly one successful claim, got %d", won)
	}
	if lost != attempts-1 {
		t.Fatalf("expected %d rejected claims, got %d", attempts-1, lost)
	}
	if len(repo.claims) != 1 {
		t.Fatalf("expected exactly one claim row, got %d", len(repo.claims))
	}
}

func TestGetClaimedFoodItems_JoinsClaimAndItem(t *testing.T) {
	repo := newStubClaimRepo()
	svc := newTestService(repo)

	itemID := uuid.New()
	recipientID := uuid.New()
	repo.addItem(itemID, domain.FoodStatusAvailable)

	if _, err := svc.ClaimFoodItem(context.Background(), itemID.String(), recipientID.String()); err != nil {
		t.Fatalf("claim returned error: %v", err)
	}

	// attach the item the way Preload would
	repo.mu.Lock()
	repo.claims[0].FoodItem = &entities.FoodItem{
		ID:     itemID,
		Title:  "Leftover bread",
		Status: domain.FoodStatusClaimed,
	}
	repo.mu.Unlock()

	items, err := svc.GetClaimedFoodItems(context.Background(), recipientID.String())
	if err != nil {
		t.Fatalf("GetClaimedFoodItems returned error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Title != "Leftover bread" {
		t.Fatalf("unexpected title: %s", items[0].Title)
	}
	if items[0].ClaimStatus != domain.ClaimStatusPending {
		t.Fatalf("unexpected claim status: %s", items[0].ClaimStatus)
	}
}
