package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"AllyBackend/internal/models"
	"AllyBackend/pkg/errors"
)

// marketStore Products / Orders 集合的 Firestore 实现
type marketStore struct {
	client *firestore.Client
}

func (s *marketStore) ListVerified(ctx context.Context, limit int) ([]models.Product, error) {
	iter := s.client.Collection(CollectionProducts).
		Where("isVerified", "==", true).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	products := make([]models.Product, 0, limit)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "list products")
		}

		var product models.Product
		if err := snap.DataTo(&product); err != nil {
			return nil, errors.Wrap(err, "decode product")
		}
		product.ID = snap.Ref.ID
		products = append(products, product)
	}
	return products, nil
}

func (s *marketStore) Get(ctx context.Context, productID string) (*models.Product, error) {
	snap, err := s.client.Collection(CollectionProducts).Doc(productID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, notFound("Product not found.")
		}
		return nil, errors.Wrap(err, "get product")
	}

	var product models.Product
	if err := snap.DataTo(&product); err != nil {
		return nil, errors.Wrap(err, "decode product")
	}
	product.ID = snap.Ref.ID
	return &product, nil
}

func (s *marketStore) CreateOrder(ctx context.Context, order *models.Order) (string, error) {
	ref, _, err := s.client.Collection(CollectionOrders).Add(ctx, order)
	if err != nil {
		return "", errors.Wrap(err, "create order")
	}
	return ref.ID, nil
}
