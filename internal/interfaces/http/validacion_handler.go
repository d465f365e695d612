package http

import (
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/smartstock/panel-api/internal/application/dto"
	"github.com/smartstock/panel-api/internal/application/validacion"
)

// ValidacionHandler maneja la validación de nóminas (protegido).
type ValidacionHandler struct {
	uc *validacion.UseCase
}

// NewValidacionHandler construye el handler.
func NewValidacionHandler(uc *validacion.UseCase) *ValidacionHandler {
	return &ValidacionHandler{uc: uc}
}

// Plantilla godoc
// @Summary      Plantilla CSV de nómina
// @Tags         validacion
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {file}  binary
// @Router       /api/validacion/plantilla [get]
func (h *ValidacionHandler) Plantilla(c *fiber.Ctx) error {
	data, err := h.uc.Plantilla(c.Context())
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="plantilla-nomina.csv"`)
	return c.Send(data)
}

// ValidarNomina godoc
// @Summary      Validar una nómina de empleados contra la regla del 90%
// @Tags         validacion
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        archivo                      formData  file  true  "CSV de nómina"
// @Param        clienteId                    formData  int   true  "Cliente"
// @Param        cantidadTarjetasSolicitadas  formData  int   true  "Tarjetas solicitadas"
// @Success      200  {object}  entity.ResultadoNomina
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/validacion/nomina [post]
func (h *ValidacionHandler) ValidarNomina(c *fiber.Ctx) error {
	fh, err := c.FormFile("archivo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "adjunta el archivo de nómina"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}
	defer f.Close()
	archivo, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el archivo"})
	}

	clienteID, _ := strconv.Atoi(c.FormValue("clienteId"))
	cantidad, _ := strconv.Atoi(c.FormValue("cantidadTarjetasSolicitadas"))

	res, err := h.uc.Validar(c.Context(), archivo, fh.Filename, clienteID, cantidad)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(res)
}
