package middleware

type ContextKey string

// AdminEmailCtxKey holds the authenticated admin's email. ParseToken only
// accepts admin-role tokens, so the role itself is not carried.
const AdminEmailCtxKey = ContextKey("admin_email")
