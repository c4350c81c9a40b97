package contextkeys

// Custom type so the key cannot collide with other packages' context values.
type contextKey string

// DBContextKey is the key under which the *gorm.DB handle (pool or
// transaction) travels through gin's context.
const DBContextKey = contextKey("db")
