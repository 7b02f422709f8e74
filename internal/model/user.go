package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 用户角色
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// User 用户文档 — 集合 users
// batch 为自由文本班次标签，不做外键约束
type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"          json:"id"`
	Username      string             `bson:"username"               json:"username"`
	Email         string             `bson:"email,omitempty"        json:"email,omitempty"`
	Password      string             `bson:"password"               json:"-"`
	Role          string             `bson:"role"                   json:"role"`
	Name          string             `bson:"name,omitempty"         json:"name,omitempty"`
	Batch         string             `bson:"batch,omitempty"        json:"batch,omitempty"`
	ParentName    string             `bson:"parentName,omitempty"   json:"parent_name,omitempty"`
	School        string             `bson:"school,omitempty"       json:"school,omitempty"`
	Address       string             `bson:"address,omitempty"      json:"address,omitempty"`
	Phone         string             `bson:"phone,omitempty"        json:"phone,omitempty"`
	AdmissionDate string             `bson:"admissionDate,omitempty" json:"admission_date,omitempty"`
	Joined        time.Time          `bson:"joined"                 json:"joined"`
}
