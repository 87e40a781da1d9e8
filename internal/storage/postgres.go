package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/CorporateGuuu/nexustechhub-sub010/internal/models"
)

//go:embed migrations.sql
var migrations embed.FS

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	UseInMemory bool
}

type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(config DatabaseConfig) (*PostgresStorage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %v", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %v", err)
	}

	storage := &PostgresStorage{db: db}

	// Initialize database schema
	if err := storage.initializeSchema(); err != nil {
		return nil, fmt.Errorf("error initializing database schema: %v", err)
	}

	return storage, nil
}

func (s *PostgresStorage) initializeSchema() error {
	migrationSQL, err := migrations.ReadFile("migrations.sql")
	if err != nil {
		return fmt.Errorf("error reading migrations file: %v", err)
	}

	_, err = s.db.Exec(string(migrationSQL))
	if err != nil {
		return fmt.Errorf("error executing migrations: %v", err)
	}

	return nil
}

func (s *PostgresStorage) GetConversationHistory(ctx context.Context, conversationID string, limit int) ([]models.ChatMessage, error) {
	// Fetch newest first, then reverse so callers see most-recent-last.
	query := `
		SELECT role, content, created_at
		FROM chat_messages
		WHERE conversation_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := s.db.QueryContext(ctx, query, conversationID, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying conversation history: %v", err)
	}
	defer rows.Close()

	var history []models.ChatMessage
	for rows.Next() {
		var msg models.ChatMessage
		if err := rows.Scan(&msg.Role, &msg.Content, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning chat message: %v", err)
		}
		history = append(history, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading chat messages: %v", err)
	}

	for i, j := 0, len(history)-1; i < j; i, j = i+1, j-1 {
		history[i], history[j] = history[j], history[i]
	}

	return history, nil
}

func (s *PostgresStorage) SaveChatMessage(ctx context.Context, conversationID, role, content string) error {
	query := `
		INSERT INTO chat_messages (conversation_id, role, content)
		VALUES ($1, $2, $3)`

	if _, err := s.db.ExecContext(ctx, query, conversationID, role, content); err != nil {
		return fmt.Errorf("error saving chat message: %v", err)
	}

	return nil
}

func (s *PostgresStorage) GetUserInfo(ctx context.Context, userID string) (*models.UserInfo, error) {
	query := `
		SELECT u.name, u.email,
		       COUNT(o.id) AS order_count,
		       MAX(o.created_at) AS last_order_date
		FROM users u
		LEFT JOIN orders o ON o.user_id = u.id
		WHERE u.id = $1
		GROUP BY u.id, u.name, u.email`

	var (
		info     models.UserInfo
		lastDate sql.NullTime
	)
	err := s.db.QueryRowContext(ctx, query, userID).Scan(&info.Name, &info.Email, &info.OrderCount, &lastDate)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error querying user info: %v", err)
	}

	if lastDate.Valid {
		t := lastDate.Time
		info.LastOrderDate = &t
	}

	return &info, nil
}

func (s *PostgresStorage) SearchProducts(ctx context.Context, keywords []string) ([]models.Product, error) {
	if len(keywords) == 0 {
		return nil, nil
	}

	conditions := make([]string, 0, len(keywords))
	args := make([]interface{}, 0, len(keywords))
	for i, kw := range keywords {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", i+1, i+1))
		args = append(args, "%"+kw+"%")
	}

	query := fmt.Sprintf(`
		SELECT id, name, slug, price, description, category_name, image_url, discount_percentage
		FROM products
		WHERE %s
		ORDER BY name
		LIMIT 10`, strings.Join(conditions, " OR "))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error searching products: %v", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var (
			p        models.Product
			imageURL sql.NullString
			discount decimal.NullDecimal
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Slug, &p.Price, &p.Description, &p.CategoryName, &imageURL, &discount); err != nil {
			return nil, fmt.Errorf("error scanning product: %v", err)
		}
		if imageURL.Valid {
			p.ImageURL = imageURL.String
		}
		if discount.Valid {
			d := discount.Decimal
			p.DiscountPercentage = &d
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading products: %v", err)
	}

	return products, nil
}

func (s *PostgresStorage) GetOrderDetails(ctx context.Context, orderNumber, userID string) (*models.Order, error) {
	query := `
		SELECT id, order_number, status, created_at, total_amount, shipping_method, tracking_number
		FROM orders
		WHERE order_number = $1 AND user_id = $2`

	var (
		orderID  int64
		order    models.Order
		tracking sql.NullString
	)
	err := s.db.QueryRowContext(ctx, query, orderNumber, userID).Scan(
		&orderID,
		&order.OrderNumber,
		&order.Status,
		&order.CreatedAt,
		&order.TotalAmount,
		&order.ShippingMethod,
		&tracking,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error querying order: %v", err)
	}
	if tracking.Valid {
		order.TrackingNumber = tracking.String
	}

	items, err := s.getOrderItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return &order, nil
}

func (s *PostgresStorage) getOrderItems(ctx context.Context, orderID int64) ([]models.OrderItem, error) {
	query := `
		SELECT product_id, product_name, quantity, price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("error querying order items: %v", err)
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ProductID, &item.ProductName, &item.Quantity, &item.Price); err != nil {
			return nil, fmt.Errorf("error scanning order item: %v", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading order items: %v", err)
	}

	return items, nil
}

func (s *PostgresStorage) GetRecentOrders(ctx context.Context, userID string) ([]models.Order, error) {
	query := `
		SELECT id, order_number, status, created_at, total_amount, shipping_method, tracking_number
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 3`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying recent orders: %v", err)
	}
	defer rows.Close()

	type orderRow struct {
		id    int64
		order models.Order
	}
	var orderRows []orderRow
	for rows.Next() {
		var (
			row      orderRow
			tracking sql.NullString
		)
		if err := rows.Scan(
			&row.id,
			&row.order.OrderNumber,
			&row.order.Status,
			&row.order.CreatedAt,
			&row.order.TotalAmount,
			&row.order.ShippingMethod,
			&tracking,
		); err != nil {
			return nil, fmt.Errorf("error scanning order: %v", err)
		}
		if tracking.Valid {
			row.order.TrackingNumber = tracking.String
		}
		orderRows = append(orderRows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading orders: %v", err)
	}

	orders := make([]models.Order, 0, len(orderRows))
	for _, row := range orderRows {
		items, err := s.getOrderItems(ctx, row.id)
		if err != nil {
			return nil, err
		}
		row.order.Items = items
		orders = append(orders, row.order)
	}

	return orders, nil
}

func (s *PostgresStorage) SearchSupportArticles(ctx context.Context, keywords []string) ([]models.SupportArticle, error) {
	if len(keywords) == 0 {
		return nil, nil
	}

	conditions := make([]string, 0, len(keywords))
	args := make([]interface{}, 0, len(keywords))
	for i, kw := range keywords {
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR content ILIKE $%d)", i+1, i+1))
		args = append(args, "%"+kw+"%")
	}

	query := fmt.Sprintf(`
		SELECT id, title, slug, summary, content
		FROM support_articles
		WHERE %s
		ORDER BY id
		LIMIT 3`, strings.Join(conditions, " OR "))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error searching support articles: %v", err)
	}
	defer rows.Close()

	var articles []models.SupportArticle
	for rows.Next() {
		var a models.SupportArticle
		if err := rows.Scan(&a.ID, &a.Title, &a.Slug, &a.Summary, &a.Content); err != nil {
			return nil, fmt.Errorf("error scanning support article: %v", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading support articles: %v", err)
	}

	return articles, nil
}

func (s *PostgresStorage) LogInteraction(ctx context.Context, interaction models.Interaction) error {
	query := `
		INSERT INTO chatbot_interactions (conversation_id, user_message, bot_response, intent)
		VALUES ($1, $2, $3, $4)`

	_, err := s.db.ExecContext(ctx, query,
		interaction.ConversationID,
		interaction.UserMessage,
		interaction.BotResponse,
		string(interaction.Intent),
	)
	if err != nil {
		return fmt.Errorf("error logging interaction: %v", err)
	}

	return nil
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}
