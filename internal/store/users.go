package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/genproto/googleapis/type/latlng"

	"AllyBackend/internal/models"
	"AllyBackend/pkg/errors"
)

// userStore Users / Volunteers_Locations 集合的 Firestore 实现
type userStore struct {
	client *firestore.Client
}

func (s *userStore) Get(ctx context.Context, phoneNumber string) (*models.User, error) {
	snap, err := s.client.Collection(CollectionUsers).Doc(phoneNumber).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound("User profile not found. Please register first.")
		}
		return nil, errors.Wrap(err, "get user profile")
	}

	var user models.User
	if err := snap.DataTo(&user); err != nil {
		return nil, errors.Wrap(err, "decode user profile")
	}
	return &user, nil
}

func (s *userStore) Create(ctx context.Context, phoneNumber string, user *models.User) error {
	ref := s.client.Collection(CollectionUsers).Doc(phoneNumber)

	snap, err := ref.Get(ctx)
	if err != nil && !isNotFound(err) {
		return errors.Wrap(err, "check existing user profile")
	}
	if err == nil && snap.Exists() {
		return conflict("User already registered.")
	}

	if _, err := ref.Set(ctx, user); err != nil {
		return errors.Wrap(err, "create user profile")
	}
	return nil
}

func (s *userStore) SetAvailability(ctx context.Context, userID string, available bool) error {
	_, err := s.client.Collection(CollectionUsers).Doc(userID).Update(ctx, []firestore.Update{
		{Path: "isAvailable", Value: available},
	})
	if err != nil {
		return errors.Wrap(err, "update availability")
	}
	return nil
}

func (s *userStore) UpsertLocation(ctx context.Context, userID string, location *latlng.LatLng) error {
	doc := models.VolunteerLocation{Location: location}
	_, err := s.client.Collection(CollectionVolunteerLocations).Doc(userID).Set(ctx, doc)
	if err != nil {
		return errors.Wrap(err, "upsert volunteer location")
	}
	return nil
}

func (s *userStore) DeleteLocation(ctx context.Context, userID string) error {
	// Delete 对不存在的文档也返回成功，下线幂等
	_, err := s.client.Collection(CollectionVolunteerLocations).Doc(userID).Delete(ctx)
	if err != nil {
		return errors.Wrap(err, "delete volunteer location")
	}
	return nil
}
