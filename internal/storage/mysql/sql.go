package mysql

const upsertDestinationSQL = `
INSERT INTO destinations
  (id, name, category, image, rating, review_count, description, location, lat, lng, price, best_time, weather, created_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, COALESCE(?, CURRENT_TIMESTAMP))
ON DUPLICATE KEY UPDATE
  name         = VALUES(name),
  category     = VALUES(category),
  image        = VALUES(image),
  rating       = VALUES(rating),
  review_count = VALUES(review_count),
  description  = VALUES(description),
  location     = VALUES(location),
  lat          = VALUES(lat),
  lng          = VALUES(lng),
  price        = VALUES(price),
  best_time    = VALUES(best_time),
  weather      = VALUES(weather),
  updated_at   = CURRENT_TIMESTAMP
`

const selectDestinationCols = `
  id, name, category, image, rating, review_count, description, location,
  lat, lng, price, best_time, weather, created_at, updated_at
`

const updateDestinationRatingSQL = `
UPDATE destinations SET rating = ?, review_count = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
`

const insertReviewSQL = `
INSERT INTO reviews (id, user_id, destination_id, rating, comment, helpful, created_at, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`

const updateReviewSQL = `
UPDATE reviews SET rating = ?, comment = ?, helpful = ?, updated_at = ? WHERE id = ?
`

const selectReviewCols = `
  id, user_id, destination_id, rating, comment, helpful, created_at, updated_at
`

const insertUserSQL = `
INSERT INTO users (id, name, email, password, avatar, bio, phone, location, favorites, trip_planner, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`

const updateUserSQL = `
UPDATE users SET name = ?, avatar = ?, bio = ?, phone = ?, location = ?, favorites = ?, trip_planner = ? WHERE id = ?
`

const selectUserCols = `
  id, name, email, password, avatar, bio, phone, location, favorites, trip_planner, created_at
`
