package repository

// Claves lógicas del estado persistido. Los nombres son parte del contrato
// externo: un dump del localStorage del panel debe poder importarse tal cual.
const (
	KeyAuthFlag = "isAdminAuthenticated" // literal "true" o ausente
	KeyAuthUser = "authUserEmail"        // email del administrador autenticado
	KeyProducts = "admin_products"       // array JSON de Product
	KeyUsers    = "admin_users"          // array JSON de User
)

// KVStore define el puerto de persistencia de los cuatro slots (DIP).
// Sin transacciones: cada Set reescribe el slot completo.
type KVStore interface {
	// Get devuelve el valor del slot y si existe.
	Get(key string) (string, bool, error)
	// Set escribe el slot completo de forma sincrónica.
	Set(key, value string) error
	// Delete elimina el slot; borrar un slot inexistente no es error.
	Delete(key string) error
}
