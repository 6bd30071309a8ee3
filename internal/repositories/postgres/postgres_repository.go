package postgres

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/CodeSmart-NG/school-service/internal/cache"
	"github.com/CodeSmart-NG/school-service/internal/repositories"
)

// PostgreSQLRepository implements the main Repository interface
type PostgreSQLRepository struct {
	db           *gorm.DB
	redisClient  *redis.Client
	cacheManager *cache.CacheManager

	message     repositories.MessageRepository
	course      repositories.CourseRepository
	student     repositories.StudentRepository
	newsletter  repositories.NewsletterRepository
	testimonial repositories.TestimonialRepository
	payment     repositories.PaymentRepository
	user        repositories.UserRepository
}

// RepositoryConfig holds configuration for repository initialization
type RepositoryConfig struct {
	DB          *gorm.DB
	RedisClient *redis.Client
}

// NewPostgreSQLRepository creates a repository with all sub-repositories wired.
func NewPostgreSQLRepository(config RepositoryConfig) repositories.Repository {
	cacheManager := cache.NewCacheManager(config.RedisClient)

	repo := &PostgreSQLRepository{
		db:           config.DB,
		redisClient:  config.RedisClient,
		cacheManager: cacheManager,
	}

	repo.message = NewMessagePostgreSQL(config.DB)
	repo.course = NewCoursePostgreSQL(config.DB, cacheManager)
	repo.student = NewStudentPostgreSQL(config.DB)
	repo.newsletter = NewNewsletterPostgreSQL(config.DB)
	repo.testimonial = NewTestimonialPostgreSQL(config.DB, cacheManager)
	repo.payment = NewPaymentPostgreSQL(config.DB)
	repo.user = NewUserPostgreSQL(config.DB)

	return repo
}

func (r *PostgreSQLRepository) Message() repositories.MessageRepository {
	return r.message
}

func (r *PostgreSQLRepository) Course() repositories.CourseRepository {
	return r.course
}

func (r *PostgreSQLRepository) Student() repositories.StudentRepository {
	return r.student
}

func (r *PostgreSQLRepository) Newsletter() repositories.NewsletterRepository {
	return r.newsletter
}

func (r *PostgreSQLRepository) Testimonial() repositories.TestimonialRepository {
	return r.testimonial
}

func (r *PostgreSQLRepository) Payment() repositories.PaymentRepository {
	return r.payment
}

func (r *PostgreSQLRepository) User() repositories.UserRepository {
	return r.user
}

// WithTransaction runs fn against a repository bound to a transaction.
// No public operation spans multiple records today; this exists for the
// admin panel's bulk edits.
func (r *PostgreSQLRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := NewPostgreSQLRepository(RepositoryConfig{
			DB:          tx,
			RedisClient: r.redisClient,
		})
		return fn(txRepo)
	})
}

func (r *PostgreSQLRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

func (r *PostgreSQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}
	return sqlDB.Close()
}

// repositoryManager implements repositories.RepositoryManager
type repositoryManager struct {
	config RepositoryConfig
	repo   repositories.Repository
}

func NewRepositoryManager(config RepositoryConfig) repositories.RepositoryManager {
	return &repositoryManager{config: config}
}

func (m *repositoryManager) Initialize() error {
	if m.config.DB == nil {
		return fmt.Errorf("database connection is required")
	}
	m.repo = NewPostgreSQLRepository(m.config)
	return nil
}

func (m *repositoryManager) GetRepository() repositories.Repository {
	return m.repo
}

func (m *repositoryManager) HealthCheck(ctx context.Context) error {
	if m.repo == nil {
		return fmt.Errorf("repositories not initialized")
	}
	return m.repo.Ping(ctx)
}

func (m *repositoryManager) Shutdown(ctx context.Context) error {
	if m.repo == nil {
		return nil
	}
	return m.repo.Close()
}
