package services

import (
	"errors"
	"strings"

	"github.com/terraincognita07/dojoaonde/internal/models"
)

type stubUserRepo struct {
	users           []models.User
	nextID          uint
	findErr         error
	createErr       error
	updateErr       error
	updatedProfiles int
	updatedHashes   map[uint]string
}

func newStubUserRepo(users ...models.User) *stubUserRepo {
	repo := &stubUserRepo{nextID: 1, updatedHashes: map[uint]string{}}
	for _, user := range users {
		if user.ID >= repo.nextID {
			repo.nextID = user.ID + 1
		}
		repo.users = append(repo.users, user)
	}
	return repo
}

func (stub *stubUserRepo) FindByEmail(email string) (models.User, bool, error) {
	if stub.findErr != nil {
		return models.User{}, false, stub.findErr
	}
	for _, user := range stub.users {
		if strings.EqualFold(strings.TrimSpace(user.Email), strings.TrimSpace(email)) {
			return user, true, nil
		}
	}
	return models.User{}, false, nil
}

func (stub *stubUserRepo) FindByID(userID uint) (models.User, error) {
	for _, user := range stub.users {
		if user.ID == userID {
			return user, nil
		}
	}
	return models.User{}, errors.New("record not found")
}

func (stub *stubUserRepo) Create(user *models.User) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	user.ID = stub.nextID
	stub.nextID++
	stub.users = append(stub.users, *user)
	return nil
}

func (stub *stubUserRepo) UpdateProfile(userID uint, name string, email string) error {
	if stub.updateErr != nil {
		return stub.updateErr
	}
	stub.updatedProfiles++
	for index := range stub.users {
		if stub.users[index].ID == userID {
			stub.users[index].Name = name
			stub.users[index].Email = email
		}
	}
	return nil
}

func (stub *stubUserRepo) UpdatePasswordHash(userID uint, passwordHash string) error {
	if stub.updateErr != nil {
		return stub.updateErr
	}
	stub.updatedHashes[userID] = passwordHash
	return nil
}

type stubDojoRepo struct {
	dojos     []models.Dojo
	nextID    uint
	listErr   error
	deleted   []uint
	updated   []models.Dojo
	createErr error
}

func newStubDojoRepo(dojos ...models.Dojo) *stubDojoRepo {
	repo := &stubDojoRepo{nextID: 1}
	for _, dojo := range dojos {
		if dojo.ID >= repo.nextID {
			repo.nextID = dojo.ID + 1
		}
		repo.dojos = append(repo.dojos, dojo)
	}
	return repo
}

func (stub *stubDojoRepo) List() ([]models.Dojo, error) {
	if stub.listErr != nil {
		return nil, stub.listErr
	}
	return append([]models.Dojo(nil), stub.dojos...), nil
}

func (stub *stubDojoRepo) ListByUser(userID uint) ([]models.Dojo, error) {
	owned := make([]models.Dojo, 0)
	for _, dojo := range stub.dojos {
		if dojo.UserID == userID {
			owned = append(owned, dojo)
		}
	}
	return owned, nil
}

func (stub *stubDojoRepo) FindByID(dojoID uint) (models.Dojo, bool, error) {
	for _, dojo := range stub.dojos {
		if dojo.ID == dojoID {
			return dojo, true, nil
		}
	}
	return models.Dojo{}, false, nil
}

func (stub *stubDojoRepo) Create(dojo *models.Dojo) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	dojo.ID = stub.nextID
	stub.nextID++
	stub.dojos = append(stub.dojos, *dojo)
	return nil
}

func (stub *stubDojoRepo) Update(dojo *models.Dojo) error {
	stub.updated = append(stub.updated, *dojo)
	for index := range stub.dojos {
		if stub.dojos[index].ID == dojo.ID {
			stub.dojos[index] = *dojo
		}
	}
	return nil
}

func (stub *stubDojoRepo) Delete(dojoID uint) error {
	stub.deleted = append(stub.deleted, dojoID)
	kept := stub.dojos[:0]
	for _, dojo := range stub.dojos {
		if dojo.ID != dojoID {
			kept = append(kept, dojo)
		}
	}
	stub.dojos = kept
	return nil
}

type plainHasher struct {
	hashErr error
}

func (hasher plainHasher) Hash(password string) (string, error) {
	if hasher.hashErr != nil {
		return "", hasher.hashErr
	}
	return "hashed:" + password, nil
}

func (hasher plainHasher) Compare(passwordHash string, password string) error {
	if passwordHash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

func stringPointer(value string) *string {
	return &value
}

func intPointer(value int) *int {
	return &value
}
