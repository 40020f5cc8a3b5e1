package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"AllyBackend/internal/models"
	"AllyBackend/pkg/errors"
)

// placeStore Places / Reviews 集合的 Firestore 实现
type placeStore struct {
	client *firestore.Client
}

func (s *placeStore) List(ctx context.Context, disabilityType string) ([]models.Place, error) {
	query := s.client.Collection(CollectionPlaces).Query
	if disabilityType != "" {
		query = query.Where("accessibilityFeatures", "array-contains", disabilityType)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	places := make([]models.Place, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "list accessible places")
		}

		var place models.Place
		if err := snap.DataTo(&place); err != nil {
			return nil, errors.Wrap(err, "decode place")
		}
		place.ID = snap.Ref.ID
		places = append(places, place)
	}
	return places, nil
}

func (s *placeStore) AddReview(ctx context.Context, review *models.Review) (string, error) {
	ref, _, err := s.client.Collection(CollectionReviews).Add(ctx, review)
	if err != nil {
		return "", errors.Wrap(err, "create review")
	}
	return ref.ID, nil
}
