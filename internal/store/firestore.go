package store

import (
	"context"
	"net/http"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"AllyBackend/pkg/errors"
)

// NewStores 基于 Firestore 客户端装配全部存储实现
func NewStores(client *firestore.Client) *Stores {
	return &Stores{
		Users:  &userStore{client: client},
		Alerts: &alertStore{client: client},
		Places: &placeStore{client: client},
		Market: &marketStore{client: client},
		pinger: func(ctx context.Context) error {
			// 读一条用户文档即可确认连接可用，结果本身不重要
			iter := client.Collection(CollectionUsers).Limit(1).Documents(ctx)
			defer iter.Stop()
			if _, err := iter.Next(); err != nil && err != iterator.Done {
				return errors.Wrap(err, "store ping")
			}
			return nil
		},
	}
}

// isNotFound 判定外部库的“文档不存在”错误
func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func notFound(message string) *errors.Error {
	return errors.WithCode(http.StatusNotFound, message)
}

func conflict(message string) *errors.Error {
	return errors.WithCode(http.StatusConflict, message)
}
