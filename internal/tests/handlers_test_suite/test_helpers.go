package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/ifeoluwa-adewoyin/inventory-management/internal/auth"
	api "github.com/ifeoluwa-adewoyin/inventory-management/internal/http"
	handler "github.com/ifeoluwa-adewoyin/inventory-management/internal/http/handlers"
	rl "github.com/ifeoluwa-adewoyin/inventory-management/internal/http/rate_limiter"
	"github.com/ifeoluwa-adewoyin/inventory-management/internal/models"
	"github.com/ifeoluwa-adewoyin/inventory-management/internal/repo"
)

var (
	token    string
	itemRepo *repo.InMemoryItemRepository
	userRepo *repo.InMemoryUserRepository
	notifier *recordingNotifier
)

func init() {
	auth.SetSecret("test-secret")
	setupTestRepos("secret123")
	r := api.NewRouter()

	var err error
	token, err = generateToken(r, "admin@inventory.test", "secret123")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	itemRepo = repo.NewInMemoryItemRepository()
	handler.SetItemRepo(itemRepo)

	userRepo = repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	notifier = &recordingNotifier{}
	handler.SetNotifier(notifier)
	handler.SetAlertCooldown(nil)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{
		Email:        "admin@inventory.test",
		PasswordHash: string(hash),
	})
}

// clearState resets the stores, the recorded notifications and the per-IP
// rate limiter between tests.
func clearState() {
	itemRepo.Clear()
	notifier.reset()
	rl.CleanupAllVisitors()
}

func generateToken(r http.Handler, email, password string) (string, error) {
	payload := handler.CredentialsRequest{Email: email, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func createItem(r http.Handler, item handler.ItemRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(item)
	req := httptest.NewRequest(http.MethodPost, "/items", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func updateItem(r http.Handler, id int64, item handler.ItemRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(item)
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/items/%d", id), bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func adjustItem(r http.Handler, id int64, adj handler.QuantityAdjustmentRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(adj)
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/items/%d/adjust", id), bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func setQuantity(r http.Handler, id int64, q handler.SetQuantityRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(q)
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/items/%d/quantity", id), bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func getItem(r http.Handler, id int64) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/items/%d", id), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// recordingNotifier captures alerts for assertions instead of delivering
// them anywhere.
type recordingNotifier struct {
	mu         sync.Mutex
	itemAlerts []models.Item
	summaries  [][]models.Item
}

func (n *recordingNotifier) ItemAlert(item models.Item) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.itemAlerts = append(n.itemAlerts, item)
	return nil
}

func (n *recordingNotifier) LowStockSummary(items []models.Item) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	cp := make([]models.Item, len(items))
	copy(cp, items)
	n.summaries = append(n.summaries, cp)
	return nil
}

func (n *recordingNotifier) reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.itemAlerts = nil
	n.summaries = nil
}

func (n *recordingNotifier) recordedItemAlerts() []models.Item {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]models.Item, len(n.itemAlerts))
	copy(out, n.itemAlerts)
	return out
}

func (n *recordingNotifier) recordedSummaries() [][]models.Item {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([][]models.Item, len(n.summaries))
	copy(out, n.summaries)
	return out
}
