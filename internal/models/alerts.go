package models

import (
	"time"

	"google.golang.org/genproto/googleapis/type/latlng"
)

// SOS 警报状态
// assigned/closed 目前只在数据层存在，没有接口会做状态流转
const (
	AlertStatusOpen     = "OPEN"
	AlertStatusAssigned = "ASSIGNED"
	AlertStatusClosed   = "CLOSED"
)

// SOSAlert 求助警报
type SOSAlert struct {
	ID         string         `firestore:"-" json:"id"`
	UserID     string         `firestore:"userId" json:"userId"`
	Location   *latlng.LatLng `firestore:"location" json:"location"`
	Timestamp  time.Time      `firestore:"timestamp,serverTimestamp" json:"timestamp"`
	Status     string         `firestore:"status" json:"status"`
	AssignedTo *string        `firestore:"assignedTo" json:"assignedTo"`
}
