package handlers

import (
	"github.com/ifeoluwa-adewoyin/inventory-management/internal/notify"
	repo "github.com/ifeoluwa-adewoyin/inventory-management/internal/repo"
)

// AlertCooldown gates per-item alerts so repeated mutations of the same
// low item do not spam the sink. A nil cooldown always allows.
type AlertCooldown interface {
	Allow(itemID int64) bool
}

var (
	itemRepo      repo.ItemRepository
	userRepo      repo.UserRepository
	notifier      notify.Notifier
	alertCooldown AlertCooldown
)

func SetItemRepo(r repo.ItemRepository) {
	itemRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetNotifier(n notify.Notifier) {
	notifier = n
}

func SetAlertCooldown(c AlertCooldown) {
	alertCooldown = c
}
