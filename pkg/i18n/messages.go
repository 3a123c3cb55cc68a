package i18n

var messages = map[string]map[string]string{
	"en": {
		"successfullyAdded":   "Successfully added",
		"successfullyUpdated": "Successfully updated",
		"successfullyDeleted": "Successfully deleted",
		"badRequest":          "Bad request",
		"notFound":            "Not found",
		"forbidden":           "Forbidden",
		"validationFailed":    "Validation failed",
		"itemNotFound":        "Menu item not found",
		"saveFailed":          "Failed to save order item",
		"invalidTransition":   "Order is not in a state that allows this change",
		"titleRequired":       "Title is required",
		"titleTooLong":        "Title may not be longer than 20 characters",
		"statusPending":       "Pending",
		"statusPreparing":     "Preparing",
		"statusServed":        "Served",
		"statusPaid":          "Paid",
		"statusCancelled":     "Cancelled",
		"statusUnknown":       "Unknown",
	},
	"es": {
		"successfullyAdded":   "Añadido correctamente",
		"successfullyUpdated": "Actualizado correctamente",
		"successfullyDeleted": "Eliminado correctamente",
		"badRequest":          "Solicitud incorrecta",
		"notFound":            "No encontrado",
		"forbidden":           "Prohibido",
		"validationFailed":    "La validación ha fallado",
		"itemNotFound":        "Plato no encontrado",
		"saveFailed":          "No se pudo guardar la línea del pedido",
		"invalidTransition":   "El pedido no está en un estado que permita este cambio",
		"titleRequired":       "El título es obligatorio",
		"titleTooLong":        "El título no puede superar los 20 caracteres",
		"statusPending":       "Pendiente",
		"statusPreparing":     "En preparación",
		"statusServed":        "Servido",
		"statusPaid":          "Pagado",
		"statusCancelled":     "Cancelado",
		"statusUnknown":       "Desconocido",
	},
}
