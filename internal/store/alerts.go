package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"AllyBackend/internal/models"
	"AllyBackend/pkg/errors"
)

// alertStore SOS_Alerts 集合的 Firestore 实现
type alertStore struct {
	client *firestore.Client
}

func (s *alertStore) Create(ctx context.Context, alert *models.SOSAlert) (string, error) {
	ref, _, err := s.client.Collection(CollectionSOSAlerts).Add(ctx, alert)
	if err != nil {
		return "", errors.Wrap(err, "create sos alert")
	}
	return ref.ID, nil
}

func (s *alertStore) ListOpen(ctx context.Context, limit int) ([]models.SOSAlert, error) {
	iter := s.client.Collection(CollectionSOSAlerts).
		Where("status", "==", models.AlertStatusOpen).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	alerts := make([]models.SOSAlert, 0, limit)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "list open sos alerts")
		}

		var alert models.SOSAlert
		if err := snap.DataTo(&alert); err != nil {
			return nil, errors.Wrap(err, "decode sos alert")
		}
		alert.ID = snap.Ref.ID
		alerts = append(alerts, alert)
	}
	return alerts, nil
}
