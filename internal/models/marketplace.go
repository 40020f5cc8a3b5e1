package models

import "time"

// 订单状态（只在创建时写入，没有后续流转）
const OrderStatusProcessing = "Processing"

// Product 市集商品，由外部导入；只有 isVerified 的商品会被列出
type Product struct {
	ID          string  `firestore:"-" json:"id"`
	Name        string  `firestore:"name" json:"name"`
	Description string  `firestore:"description" json:"description"`
	Price       float64 `firestore:"price" json:"price"`
	Category    string  `firestore:"category" json:"category"`
	IsVerified  bool    `firestore:"isVerified" json:"isVerified"`
}

// OrderItem 订单行
type OrderItem struct {
	ProductID string  `firestore:"productId" json:"productId"`
	Name      string  `firestore:"name" json:"name"`
	Quantity  int     `firestore:"quantity" json:"quantity"`
	Price     float64 `firestore:"price" json:"price"`
}

// Order 订单，结算即创建，无幂等键，重复请求会生成重复订单
type Order struct {
	ID          string      `firestore:"-" json:"id"`
	UserID      string      `firestore:"userId" json:"userId"`
	Items       []OrderItem `firestore:"items" json:"items"`
	TotalAmount float64     `firestore:"totalAmount" json:"totalAmount"`
	Status      string      `firestore:"status" json:"status"`
	CreatedAt   time.Time   `firestore:"createdAt,serverTimestamp" json:"createdAt"`
}
