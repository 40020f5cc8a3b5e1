package store

import (
	"context"

	"google.golang.org/genproto/googleapis/type/latlng"

	"AllyBackend/internal/models"
)

// 文档库集合名
const (
	CollectionUsers              = "Users"
	CollectionSOSAlerts          = "SOS_Alerts"
	CollectionVolunteerLocations = "Volunteers_Locations"
	CollectionPlaces             = "Places"
	CollectionReviews            = "Reviews"
	CollectionProducts           = "Products"
	CollectionOrders             = "Orders"
)

// UserStore 用户档案与志愿者位置
type UserStore interface {
	// Get 按手机号取档案，不存在返回 404 错误
	Get(ctx context.Context, phoneNumber string) (*models.User, error)
	// Create 创建档案，已存在返回 409 错误
	// 读后写，无事务保护，并发注册同号时后写覆盖（外部库 last-write-wins 语义）
	Create(ctx context.Context, phoneNumber string, user *models.User) error
	// SetAvailability 更新志愿者可用状态
	SetAvailability(ctx context.Context, userID string, available bool) error
	// UpsertLocation 上线时写入/覆盖位置记录
	UpsertLocation(ctx context.Context, userID string, location *latlng.LatLng) error
	// DeleteLocation 下线时删除位置记录
	DeleteLocation(ctx context.Context, userID string) error
}

// AlertStore SOS 警报
type AlertStore interface {
	Create(ctx context.Context, alert *models.SOSAlert) (string, error)
	// ListOpen 返回至多 limit 条 OPEN 状态警报，顺序为存储默认顺序
	ListOpen(ctx context.Context, limit int) ([]models.SOSAlert, error)
}

// PlaceStore 无障碍地点与评价
type PlaceStore interface {
	// List 列出地点，disabilityType 非空时按无障碍特性过滤
	List(ctx context.Context, disabilityType string) ([]models.Place, error)
	AddReview(ctx context.Context, review *models.Review) (string, error)
}

// MarketStore 市集商品与订单
type MarketStore interface {
	// ListVerified 返回至多 limit 条已审核商品
	ListVerified(ctx context.Context, limit int) ([]models.Product, error)
	// Get 按 ID 取商品，不存在返回 404 错误
	Get(ctx context.Context, productID string) (*models.Product, error)
	CreateOrder(ctx context.Context, order *models.Order) (string, error)
}

// Stores 聚合各集合的存储句柄，进程启动时构造一次后只读共享
type Stores struct {
	Users  UserStore
	Alerts AlertStore
	Places PlaceStore
	Market MarketStore

	pinger func(ctx context.Context) error
}

// Ping 探测文档库连通性，用于健康检查
func (s *Stores) Ping(ctx context.Context) error {
	if s.pinger == nil {
		return nil
	}
	return s.pinger(ctx)
}
