package models

import (
	"time"

	"google.golang.org/genproto/googleapis/type/latlng"
)

// Place 无障碍地点，由外部导入，本系统只读
type Place struct {
	ID                    string         `firestore:"-" json:"id"`
	Name                  string         `firestore:"name" json:"name"`
	Description           string         `firestore:"description" json:"description"`
	Address               string         `firestore:"address" json:"address"`
	AccessibilityFeatures []string       `firestore:"accessibilityFeatures" json:"accessibilityFeatures"`
	Location              *latlng.LatLng `firestore:"location" json:"location"`
}

// Review 无障碍评价，只增不改
type Review struct {
	ID        string    `firestore:"-" json:"id"`
	PlaceID   string    `firestore:"placeId" json:"placeId"`
	UserID    string    `firestore:"userId" json:"userId"`
	Rating    int       `firestore:"rating" json:"rating"`
	Comments  *string   `firestore:"comments" json:"comments"`
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp" json:"createdAt"`
}
