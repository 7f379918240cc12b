package server

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/noah-isme/uav-academic-soa/api/swagger"
	"github.com/noah-isme/uav-academic-soa/internal/handler"
	"github.com/noah-isme/uav-academic-soa/internal/middleware"
	"github.com/noah-isme/uav-academic-soa/internal/repository"
	"github.com/noah-isme/uav-academic-soa/internal/service"
	"github.com/noah-isme/uav-academic-soa/pkg/config"
	"github.com/noah-isme/uav-academic-soa/pkg/logger"
	corsmiddleware "github.com/noah-isme/uav-academic-soa/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/uav-academic-soa/pkg/middleware/requestid"
)

// Dependencies are the process-wide collaborators shared by both gateways.
type Dependencies struct {
	Config *config.Config
	DB     *sqlx.DB
	// Redis is optional; a nil client disables the list cache.
	Redis *redis.Client
	// Metrics is optional; nil disables /metrics and request instrumentation.
	Metrics *service.MetricsService
	Logger  *zap.Logger
}

func (d Dependencies) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

func (d Dependencies) serviceOptions() service.Options {
	opts := service.Options{Metrics: d.Metrics, Logger: d.logger()}
	if d.Config != nil && d.Config.Cache.Enabled && d.Redis != nil {
		opts.Cache = service.NewCacheService(repository.NewCacheRepository(d.Redis), d.Metrics, d.Config.Cache.TTL, d.logger(), true)
	}
	return opts
}

// NewRESTRouter wires the JSON gateway: /api/students, /api/courses and /api/grades.
func NewRESTRouter(deps Dependencies) *gin.Engine {
	r := newEngine(deps)

	validate := validator.New()
	opts := deps.serviceOptions()

	students := handler.NewStudentHandler(service.NewStudentService(repository.NewStudentRepository(deps.DB), validate, opts))
	courses := handler.NewCourseHandler(service.NewCourseService(repository.NewCourseRepository(deps.DB), validate, opts))
	grades := handler.NewGradeHandler(service.NewGradeService(repository.NewGradeRepository(deps.DB), validate, opts))

	api := r.Group("/api")
	api.GET("/students", students.List)
	api.POST("/students", students.Create)
	api.GET("/courses", courses.List)
	api.POST("/courses", courses.Create)
	api.GET("/grades", grades.List)
	api.POST("/grades", grades.Create)

	if deps.Config == nil || deps.Config.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}

// NewSOAPRouter wires the XML gateway on /soap.
func NewSOAPRouter(deps Dependencies) *gin.Engine {
	r := newEngine(deps)

	enrollments := service.NewEnrollmentService(repository.NewEnrollmentRepository(deps.DB), deps.serviceOptions())
	soapHandler := handler.NewSOAPHandler(enrollments, deps.Metrics, deps.logger())

	r.GET("/soap", soapHandler.WSDL)
	r.POST("/soap", soapHandler.Handle)

	return r
}

func newEngine(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(deps.logger()))
	var origins []string
	if deps.Config != nil {
		origins = deps.Config.CORS.AllowedOrigins
	}
	r.Use(corsmiddleware.New(origins))
	r.Use(middleware.Metrics(deps.Metrics))

	observability := handler.NewMetricsHandler(deps.Metrics, repository.NewSchemaRepository(deps.DB))
	r.GET("/health", observability.Health)
	r.GET("/ready", observability.Ready)
	if deps.Metrics != nil {
		r.GET("/metrics", observability.Prometheus)
	}

	return r
}
