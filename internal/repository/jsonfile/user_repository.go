package jsonfile

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/vytor/jeeprep/internal/errors"
	"github.com/vytor/jeeprep/internal/logger"
	"github.com/vytor/jeeprep/internal/models"
)

type userRepository struct {
	files *files
	now   func() time.Time
}

func newUserRepository(f *files) *userRepository {
	return &userRepository{files: f, now: time.Now}
}

func (r *userRepository) load() ([]models.User, error) {
	data, err := r.files.readFile(UsersFile)
	if err != nil || len(data) == 0 {
		return []models.User{}, err
	}
	var users []models.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) save(users []models.User) error {
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return r.files.writeJSON(UsersFile, users)
}

func find(users []models.User, id string) int {
	for i := range users {
		if users[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *userRepository) Get(ctx context.Context, id string) (*models.User, error) {
	users, err := r.load()
	if err != nil {
		logger.FromContext(ctx).WithPrefix("user_file").Error("failed to read users: %v", err)
		return nil, err
	}
	if i := find(users, id); i >= 0 {
		return &users[i], nil
	}
	return nil, errors.ErrNotFound
}

func (r *userRepository) List(ctx context.Context) ([]models.User, error) {
	users, err := r.load()
	if err != nil {
		logger.FromContext(ctx).WithPrefix("user_file").Error("failed to read users: %v", err)
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Ensure(ctx context.Context, id string) (*models.User, error) {
	log := logger.FromContext(ctx).WithPrefix("user_file")

	r.files.mu.Lock()
	defer r.files.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}
	if i := find(users, id); i >= 0 {
		return &users[i], nil
	}

	u := models.User{ID: id, JoinedDate: r.now().UTC()}
	if err := r.save(append(users, u)); err != nil {
		log.Error("failed to write users: %v", err)
		return nil, err
	}
	log.Debug("created user: id=%s", id)
	return &u, nil
}

func (r *userRepository) Update(ctx context.Context, user models.User) (*models.User, error) {
	r.files.mu.Lock()
	defer r.files.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return nil, err
	}
	i := find(users, user.ID)
	if i < 0 {
		return nil, errors.ErrNotFound
	}
	users[i].Name = user.Name
	users[i].Email = user.Email
	updated := users[i]

	if err := r.save(users); err != nil {
		logger.FromContext(ctx).WithPrefix("user_file").Error("failed to write users: %v", err)
		return nil, err
	}
	return &updated, nil
}
