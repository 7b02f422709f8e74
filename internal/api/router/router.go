package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dc-onecallaway/my-school-app/config"
	"github.com/dc-onecallaway/my-school-app/internal/api/handler"
	"github.com/dc-onecallaway/my-school-app/internal/api/middleware"
	"github.com/dc-onecallaway/my-school-app/pkg/jwt"
	"github.com/dc-onecallaway/my-school-app/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(1 << 20))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证；登录接口限流）
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, 10, time.Minute), h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			admin := middleware.RoleAuth("admin")

			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.GetCurrentUser)

			// 学生目录
			students := authorized.Group("/students")
			{
				students.GET("", admin, h.User.ListStudents)
				students.GET("/:id", admin, h.User.GetStudent)
				students.POST("", admin, h.User.CreateStudent)
				students.PUT("/:id", admin, h.User.UpdateStudent)
				students.DELETE("/:id", admin, h.User.DeleteStudent)
			}
			authorized.GET("/batches", admin, h.User.ListBatches)

			// 考勤模块
			attendance := authorized.Group("/attendance")
			{
				attendance.POST("/fetch", admin, h.Attendance.FetchDayView)
				attendance.POST("", admin, h.Attendance.Commit)
				attendance.GET("/report", admin, h.Attendance.Report)
				attendance.GET("/students/:studentId", h.Attendance.StudentHistory)
			}

			// 成绩模块
			results := authorized.Group("/results")
			{
				results.POST("", admin, h.Result.Create)
				results.GET("", admin, h.Result.ListAll)
				results.GET("/student/:studentId", h.Result.ListByStudent)
				results.GET("/:id", admin, h.Result.GetByID)
				results.PUT("/:id", admin, h.Result.Update)
				results.DELETE("/:id", admin, h.Result.Delete)
			}

			// 通告模块
			announcements := authorized.Group("/announcements")
			{
				announcements.POST("", admin, h.Announcement.Create)
				announcements.GET("", h.Announcement.List)
				announcements.DELETE("/:id", admin, h.Announcement.Delete)
			}

			// 测验安排
			tests := authorized.Group("/tests")
			{
				tests.POST("", admin, h.Test.Create)
				tests.GET("", h.Test.List)
				tests.DELETE("/:id", admin, h.Test.Delete)
			}

			// 课程安排
			classes := authorized.Group("/classes")
			{
				classes.POST("", admin, h.Class.Create)
				classes.GET("", h.Class.List)
				classes.GET("/ics", h.Export.ExportClassScheduleICS)
				classes.DELETE("/:id", admin, h.Class.Delete)
			}

			// 课表分发
			timetable := authorized.Group("/timetable")
			{
				timetable.POST("", admin, h.Timetable.Upsert)
				timetable.GET("/:batch", h.Timetable.GetByBatch)
			}

			// 站内通知
			authorized.GET("/notifications", h.Notification.List)

			// 管理端统计
			authorized.GET("/stats", admin, h.Stats.Summary)

			// 导出模块
			export := authorized.Group("/export")
			{
				export.GET("/attendance", admin, h.Export.ExportAttendanceReport)
			}
		}
	}

	return r
}
