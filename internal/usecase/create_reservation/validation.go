package create_reservation

import (
	"fmt"
	"strings"
)

// normalizeRequest обрезает пробелы и проверяет обязательные поля
func normalizeRequest(req *Request) error {
	req.Nombre = strings.TrimSpace(req.Nombre)
	req.Apellido = strings.TrimSpace(req.Apellido)
	req.Whatsapp = strings.TrimSpace(req.Whatsapp)
	req.Cancha = strings.TrimSpace(req.Cancha)
	req.Fecha = strings.TrimSpace(req.Fecha)
	req.Horario = strings.TrimSpace(req.Horario)

	required := []struct {
		name  string
		value string
	}{
		{"nombre", req.Nombre},
		{"apellido", req.Apellido},
		{"whatsapp", req.Whatsapp},
		{"cancha", req.Cancha},
		{"fecha", req.Fecha},
		{"horario", req.Horario},
	}

	var missing []string
	for _, f := range required {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidInput, strings.Join(missing, ", "))
	}

	if req.Deporte != nil {
		deporte := strings.TrimSpace(*req.Deporte)
		if deporte == "" {
			req.Deporte = nil
		} else {
			req.Deporte = &deporte
		}
	}

	if req.Precio != nil && *req.Precio < 0 {
		return fmt.Errorf("%w: precio must not be negative", ErrInvalidInput)
	}

	return nil
}
