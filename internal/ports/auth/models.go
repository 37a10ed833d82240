package auth

// Claims identifica al administrador autenticado en el request.
type Claims struct {
	AdminID  int64
	Username string
	Role     string
}
