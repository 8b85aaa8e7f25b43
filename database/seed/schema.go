package seed

const defaultReviewImgURL = "https://images.pexels.com/photos/163064/play-stone-network-networked-interactive-163064.jpeg"

// dropStatements removes tables in dependency order.
var dropStatements = []string{
	"DROP TABLE IF EXISTS comments;",
	"DROP TABLE IF EXISTS reviews;",
	"DROP TABLE IF EXISTS users;",
	"DROP TABLE IF EXISTS categories;",
}

var createStatements = []string{
	`CREATE TABLE categories (
		slug VARCHAR PRIMARY KEY,
		description VARCHAR NOT NULL
	);`,
	`CREATE TABLE users (
		username VARCHAR PRIMARY KEY,
		name VARCHAR NOT NULL,
		avatar_url VARCHAR
	);`,
	`CREATE TABLE reviews (
		review_id SERIAL PRIMARY KEY,
		title VARCHAR NOT NULL,
		category VARCHAR NOT NULL CONSTRAINT reviews_category_fkey REFERENCES categories(slug),
		designer VARCHAR,
		owner VARCHAR NOT NULL CONSTRAINT reviews_owner_fkey REFERENCES users(username),
		review_body VARCHAR NOT NULL,
		review_img_url VARCHAR DEFAULT '` + defaultReviewImgURL + `',
		created_at TIMESTAMP DEFAULT NOW(),
		votes INT DEFAULT 0 NOT NULL
	);`,
	`CREATE TABLE comments (
		comment_id SERIAL PRIMARY KEY,
		review_id INT NOT NULL CONSTRAINT comments_review_id_fkey REFERENCES reviews(review_id) ON DELETE CASCADE,
		author VARCHAR NOT NULL CONSTRAINT comments_author_fkey REFERENCES users(username),
		body VARCHAR NOT NULL,
		votes INT DEFAULT 0 NOT NULL,
		created_at TIMESTAMP DEFAULT NOW()
	);`,
}

const (
	insertCategory = "INSERT INTO categories (slug, description) VALUES (?, ?);"
	insertUser     = "INSERT INTO users (username, name, avatar_url) VALUES (?, ?, ?);"
	insertReview   = `INSERT INTO reviews (title, category, designer, owner, review_body, review_img_url, created_at, votes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?);`
	insertComment = "INSERT INTO comments (review_id, author, body, votes, created_at) VALUES (?, ?, ?, ?, ?);"
)
