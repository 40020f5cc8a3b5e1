package models

import (
	"time"

	"google.golang.org/genproto/googleapis/type/latlng"
)

// 用户角色
const (
	RolePWD       = "PWD" // 残障用户
	RoleVolunteer = "Volunteer"
	RoleNGO       = "NGO"
)

// User 用户档案，文档 ID 即手机号
// isAvailable 只对志愿者/NGO 有意义，disabilityType 只对 PWD 有意义，互斥为 null
type User struct {
	Name           string    `firestore:"name" json:"name"`
	Role           string    `firestore:"role" json:"role"`
	IsVerified     bool      `firestore:"isVerified" json:"isVerified"`
	IsAvailable    *bool     `firestore:"isAvailable" json:"isAvailable"`
	DisabilityType *string   `firestore:"disabilityType" json:"disabilityType"`
	RollNumber     *string   `firestore:"rollNumber" json:"rollNumber"`
	CreatedAt      time.Time `firestore:"createdAt,serverTimestamp" json:"createdAt"`
}

// VolunteerLocation 志愿者实时位置，文档 ID 即用户标识
// 只在志愿者上线期间存在，下线即删除
type VolunteerLocation struct {
	Location    *latlng.LatLng `firestore:"location" json:"location"`
	LastUpdated time.Time      `firestore:"lastUpdated,serverTimestamp" json:"lastUpdated"`
}
