package controller

// Mensajes que la vista muestra tras un fallo de transporte.
const (
	msgLoadProducts   = "Error al cargar los productos"
	msgCreateProduct  = "Error al crear el producto"
	msgUpdateProduct  = "Error al actualizar el producto"
	msgDeleteProduct  = "Error al eliminar el producto"
	msgConfirmProduct = "¿Estás seguro de eliminar este producto?"

	msgLoadCategories  = "Error al cargar las categorías"
	msgCreateCategory  = "Error al crear la categoría"
	msgUpdateCategory  = "Error al actualizar la categoría"
	msgDeleteCategory  = "Error al eliminar la categoría"
	msgConfirmCategory = "¿Estás seguro de eliminar esta categoría?"

	msgLoadMovements  = "Error al cargar los movimientos"
	msgCreateMovement = "Error al registrar el movimiento"

	msgLoadDashboard = "Error al cargar las estadísticas"
)
