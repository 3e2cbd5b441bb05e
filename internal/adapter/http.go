package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/oelbekkali/colisops/internal/logger"
	"github.com/oelbekkali/colisops/models"
)

// HTTPClientConfig carries the transport settings of the HTTP adapter.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpBackendAdapter struct {
	client *resty.Client
	logger *logger.Logger

	mu    sync.RWMutex
	token string
}

// NewHTTPBackendAdapter constructs an HTTP/REST implementation of
// [BackendAdapter]. It normalizes and validates the base URL and
// configures the underlying resty client with the resolved base URL
// and the fixed request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed.
func NewHTTPBackendAdapter(cfg HTTPClientConfig, log *logger.Logger) (BackendAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout)

	return &httpBackendAdapter{client: cli, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [BackendAdapter]. It stores token
// (whitespace-trimmed) for the Authorization header of all subsequent
// authenticated requests.
func (h *httpBackendAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [BackendAdapter].
func (h *httpBackendAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// ClearToken implements [BackendAdapter].
func (h *httpBackendAdapter) ClearToken() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = ""
}

// authedRequest builds a request carrying the bearer token when one is
// held. Login is the only call that goes out without it.
func (h *httpBackendAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// ── auth ────────────────────────────────────────────────────────────────────

func (h *httpBackendAdapter) Login(ctx context.Context, email, password string) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{Email: email, Password: password}).
		Post("/utilisateur/login")
	if err != nil {
		return "", fmt.Errorf("%w: login request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	lr, err := decodeBare[models.LoginResponse](resp.Body())
	if err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	if lr.Token == "" {
		return "", fmt.Errorf("%w: login response without token", ErrUnexpectedPayload)
	}

	return lr.Token, nil
}

func (h *httpBackendAdapter) GetUser(ctx context.Context, email string) (models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/utilisateur/" + url.PathEscape(email))
	if err != nil {
		return models.User{}, fmt.Errorf("%w: get user request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	user, err := decodeBare[models.User](resp.Body())
	if err != nil {
		return models.User{}, fmt.Errorf("decode user response: %w", err)
	}

	return user, nil
}

// ── agencies ────────────────────────────────────────────────────────────────

func (h *httpBackendAdapter) ListAgencyAddresses(ctx context.Context) ([]string, error) {
	resp, err := h.authedRequest(ctx).Get("/agence/all")
	if err != nil {
		return nil, fmt.Errorf("%w: list agency addresses request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeListData[string](resp.Body())
}

func (h *httpBackendAdapter) GetAgencyDetails(ctx context.Context, address string) (models.AgencyDetailsDTO, error) {
	resp, err := h.authedRequest(ctx).Get("/agence/details/" + url.PathEscape(address))
	if err != nil {
		return models.AgencyDetailsDTO{}, fmt.Errorf("%w: agency details request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AgencyDetailsDTO{}, err
	}

	return decodeData[models.AgencyDetailsDTO](resp.Body())
}

func (h *httpBackendAdapter) CreateAgency(ctx context.Context, req models.CreateAgencyRequest) (models.AgencyDashboardDTO, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/agence/create")
	if err != nil {
		return models.AgencyDashboardDTO{}, fmt.Errorf("%w: create agency request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AgencyDashboardDTO{}, err
	}

	return decodeData[models.AgencyDashboardDTO](resp.Body())
}

func (h *httpBackendAdapter) UpdateAgency(ctx context.Context, id int64, req models.CreateAgencyRequest) (models.AgencyDashboardDTO, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/agence/update/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.AgencyDashboardDTO{}, fmt.Errorf("%w: update agency request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AgencyDashboardDTO{}, err
	}

	return decodeData[models.AgencyDashboardDTO](resp.Body())
}

func (h *httpBackendAdapter) DeleteAgency(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).Delete("/agence/delete/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("%w: delete agency request: %v", ErrNetwork, err)
	}

	return mapHTTPError(resp)
}

// ── vehicles ────────────────────────────────────────────────────────────────

func (h *httpBackendAdapter) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	resp, err := h.authedRequest(ctx).Get("/vehicule/getAll")
	if err != nil {
		return nil, fmt.Errorf("%w: list vehicles request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeListData[models.Vehicle](resp.Body())
}

func (h *httpBackendAdapter) ListAvailableVehicles(ctx context.Context) ([]models.Vehicle, error) {
	resp, err := h.authedRequest(ctx).Get("/vehicule/available")
	if err != nil {
		return nil, fmt.Errorf("%w: list available vehicles request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeListData[models.Vehicle](resp.Body())
}

func (h *httpBackendAdapter) GetVehicle(ctx context.Context, registration string) (models.Vehicle, error) {
	resp, err := h.authedRequest(ctx).Get("/vehicule/" + url.PathEscape(registration))
	if err != nil {
		return models.Vehicle{}, fmt.Errorf("%w: get vehicle request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Vehicle{}, err
	}

	return decodeData[models.Vehicle](resp.Body())
}

func (h *httpBackendAdapter) CreateVehicle(ctx context.Context, req models.CreateVehicleRequest) (models.Vehicle, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/vehicule/create")
	if err != nil {
		return models.Vehicle{}, fmt.Errorf("%w: create vehicle request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Vehicle{}, err
	}

	return decodeData[models.Vehicle](resp.Body())
}

func (h *httpBackendAdapter) UpdateVehicle(ctx context.Context, registration string, req models.CreateVehicleRequest) (models.Vehicle, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/vehicule/" + url.PathEscape(registration))
	if err != nil {
		return models.Vehicle{}, fmt.Errorf("%w: update vehicle request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Vehicle{}, err
	}

	return decodeData[models.Vehicle](resp.Body())
}

func (h *httpBackendAdapter) DeleteVehicle(ctx context.Context, registration string) error {
	resp, err := h.authedRequest(ctx).Delete("/vehicule/" + url.PathEscape(registration))
	if err != nil {
		return fmt.Errorf("%w: delete vehicle request: %v", ErrNetwork, err)
	}

	return mapHTTPError(resp)
}

// ── employees ───────────────────────────────────────────────────────────────

func (h *httpBackendAdapter) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	resp, err := h.authedRequest(ctx).Get("/employe")
	if err != nil {
		return nil, fmt.Errorf("%w: list employees request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeListData[models.Employee](resp.Body())
}

func (h *httpBackendAdapter) GetEmployee(ctx context.Context, cin string) (models.Employee, error) {
	resp, err := h.authedRequest(ctx).Get("/employe/find/" + url.PathEscape(cin))
	if err != nil {
		return models.Employee{}, fmt.Errorf("%w: get employee request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Employee{}, err
	}

	return decodeData[models.Employee](resp.Body())
}

func (h *httpBackendAdapter) CreateEmployee(ctx context.Context, req models.CreateEmployeeRequest) (models.Employee, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/employe/create")
	if err != nil {
		return models.Employee{}, fmt.Errorf("%w: create employee request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Employee{}, err
	}

	return decodeData[models.Employee](resp.Body())
}

func (h *httpBackendAdapter) CreateEmployeeWithUser(ctx context.Context, req models.CreateEmployeeWithUserRequest) (models.Employee, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/utilisateur/create-with-employe")
	if err != nil {
		return models.Employee{}, fmt.Errorf("%w: create employee with user request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Employee{}, err
	}

	return decodeData[models.Employee](resp.Body())
}

func (h *httpBackendAdapter) UpdateEmployee(ctx context.Context, cin string, req models.CreateEmployeeRequest) (models.Employee, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/employe/" + url.PathEscape(cin))
	if err != nil {
		return models.Employee{}, fmt.Errorf("%w: update employee request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Employee{}, err
	}

	return decodeData[models.Employee](resp.Body())
}

func (h *httpBackendAdapter) UpdateEmployeeWithUser(ctx context.Context, cin string, req models.CreateEmployeeWithUserRequest) (models.Employee, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/employe/" + url.PathEscape(cin) + "/with-user")
	if err != nil {
		return models.Employee{}, fmt.Errorf("%w: update employee with user request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Employee{}, err
	}

	return decodeData[models.Employee](resp.Body())
}

func (h *httpBackendAdapter) DeleteEmployee(ctx context.Context, cin string) error {
	resp, err := h.authedRequest(ctx).Delete("/employe/" + url.PathEscape(cin))
	if err != nil {
		return fmt.Errorf("%w: delete employee request: %v", ErrNetwork, err)
	}

	return mapHTTPError(resp)
}

func (h *httpBackendAdapter) AssignVehicle(ctx context.Context, cin, registration string) (models.Employee, error) {
	resp, err := h.authedRequest(ctx).
		Put("/employe/" + url.PathEscape(cin) + "/vehicule/" + url.PathEscape(registration))
	if err != nil {
		return models.Employee{}, fmt.Errorf("%w: assign vehicle request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Employee{}, err
	}

	return decodeData[models.Employee](resp.Body())
}

func (h *httpBackendAdapter) UnassignVehicle(ctx context.Context, cin string) (models.Employee, error) {
	resp, err := h.authedRequest(ctx).Delete("/employe/" + url.PathEscape(cin) + "/vehicule")
	if err != nil {
		return models.Employee{}, fmt.Errorf("%w: unassign vehicle request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Employee{}, err
	}

	return decodeData[models.Employee](resp.Body())
}

func (h *httpBackendAdapter) ListRoles(ctx context.Context) ([]models.RoleEntity, error) {
	resp, err := h.authedRequest(ctx).Get("/roles")
	if err != nil {
		return nil, fmt.Errorf("%w: list roles request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeListData[models.RoleEntity](resp.Body())
}

// ── couriers ────────────────────────────────────────────────────────────────

func (h *httpBackendAdapter) ListCouriers(ctx context.Context) ([]models.Courier, error) {
	resp, err := h.authedRequest(ctx).Get("/courriers/all")
	if err != nil {
		return nil, fmt.Errorf("%w: list couriers request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeListData[models.Courier](resp.Body())
}

func (h *httpBackendAdapter) ListCouriersByStatus(ctx context.Context, status models.CourierStatus) ([]models.Courier, error) {
	resp, err := h.authedRequest(ctx).Get("/courriers/statut/" + url.PathEscape(string(status)))
	if err != nil {
		return nil, fmt.Errorf("%w: list couriers by status request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeListData[models.Courier](resp.Body())
}

func (h *httpBackendAdapter) GetCourier(ctx context.Context, id int64) (models.Courier, error) {
	resp, err := h.authedRequest(ctx).Get("/courriers/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.Courier{}, fmt.Errorf("%w: get courier request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Courier{}, err
	}

	return decodeData[models.Courier](resp.Body())
}

func (h *httpBackendAdapter) CreateCourier(ctx context.Context, req models.CreateCourierRequest) (models.Courier, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/courriers/create-with-client")
	if err != nil {
		return models.Courier{}, fmt.Errorf("%w: create courier request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Courier{}, err
	}

	return decodeData[models.Courier](resp.Body())
}

func (h *httpBackendAdapter) UpdateCourier(ctx context.Context, id int64, req models.CreateCourierRequest) (models.Courier, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/courriers/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.Courier{}, fmt.Errorf("%w: update courier request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Courier{}, err
	}

	return decodeData[models.Courier](resp.Body())
}

func (h *httpBackendAdapter) DeleteCourier(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).Delete("/courriers/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("%w: delete courier request: %v", ErrNetwork, err)
	}

	return mapHTTPError(resp)
}

func (h *httpBackendAdapter) ChangeCourierStatus(ctx context.Context, id int64, status models.CourierStatus) (models.Courier, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("newStatus", string(status)).
		Put("/courriers/status/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.Courier{}, fmt.Errorf("%w: change courier status request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Courier{}, err
	}

	return decodeData[models.Courier](resp.Body())
}

// ── deliveries (bare JSON endpoints) ────────────────────────────────────────

func (h *httpBackendAdapter) ListDeliveries(ctx context.Context) ([]models.Delivery, error) {
	resp, err := h.authedRequest(ctx).Get("/courriers/livraisons")
	if err != nil {
		return nil, fmt.Errorf("%w: list deliveries request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeBareList[models.Delivery](resp.Body())
}

func (h *httpBackendAdapter) GetDelivery(ctx context.Context, id int64) (models.Delivery, error) {
	resp, err := h.authedRequest(ctx).Get("/courriers/livraison/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.Delivery{}, fmt.Errorf("%w: get delivery request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Delivery{}, err
	}

	return decodeBare[models.Delivery](resp.Body())
}

func (h *httpBackendAdapter) CreateDelivery(ctx context.Context, req models.CreateDeliveryRequest) (models.Delivery, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/courriers/livraison")
	if err != nil {
		return models.Delivery{}, fmt.Errorf("%w: create delivery request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Delivery{}, err
	}

	return decodeBare[models.Delivery](resp.Body())
}

func (h *httpBackendAdapter) UpdateDelivery(ctx context.Context, id int64, req models.CreateDeliveryRequest) (models.Delivery, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/courriers/livraison/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.Delivery{}, fmt.Errorf("%w: update delivery request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Delivery{}, err
	}

	return decodeBare[models.Delivery](resp.Body())
}

func (h *httpBackendAdapter) DeleteDelivery(ctx context.Context, id int64) error {
	resp, err := h.authedRequest(ctx).Delete("/courriers/livraison/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("%w: delete delivery request: %v", ErrNetwork, err)
	}

	return mapHTTPError(resp)
}

// ── invoices ────────────────────────────────────────────────────────────────

func (h *httpBackendAdapter) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	resp, err := h.authedRequest(ctx).Get("/courriers/factures/all")
	if err != nil {
		return nil, fmt.Errorf("%w: list invoices request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return decodeListData[models.Invoice](resp.Body())
}

func (h *httpBackendAdapter) GetInvoice(ctx context.Context, id int64) (models.Invoice, error) {
	resp, err := h.authedRequest(ctx).Get("/courriers/facture/" + strconv.FormatInt(id, 10))
	if err != nil {
		return models.Invoice{}, fmt.Errorf("%w: get invoice request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Invoice{}, err
	}

	return decodeData[models.Invoice](resp.Body())
}

func (h *httpBackendAdapter) CreateInvoice(ctx context.Context, req models.CreateInvoiceRequest) (models.Invoice, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/courriers/facture/create")
	if err != nil {
		return models.Invoice{}, fmt.Errorf("%w: create invoice request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Invoice{}, err
	}

	return decodeData[models.Invoice](resp.Body())
}

func (h *httpBackendAdapter) UpdateInvoiceStatus(ctx context.Context, id int64, status models.PaymentStatus) (models.Invoice, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]models.PaymentStatus{"statutPaiement": status}).
		Put("/courriers/facture/" + strconv.FormatInt(id, 10) + "/status")
	if err != nil {
		return models.Invoice{}, fmt.Errorf("%w: update invoice status request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Invoice{}, err
	}

	return decodeData[models.Invoice](resp.Body())
}

func (h *httpBackendAdapter) InvoicePDF(ctx context.Context, id int64) ([]byte, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Accept", "application/pdf").
		Get("/courriers/facture/" + strconv.FormatInt(id, 10) + "/pdf")
	if err != nil {
		return nil, fmt.Errorf("%w: invoice pdf request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// ── labels ──────────────────────────────────────────────────────────────────

func (h *httpBackendAdapter) GenerateLabel(ctx context.Context, courierID int64) (models.Label, error) {
	resp, err := h.authedRequest(ctx).
		Post("/courriers/etiquette/generate/" + strconv.FormatInt(courierID, 10))
	if err != nil {
		return models.Label{}, fmt.Errorf("%w: generate label request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Label{}, err
	}

	return decodeData[models.Label](resp.Body())
}

func (h *httpBackendAdapter) GetLabelByTracking(ctx context.Context, code string) (models.Label, error) {
	resp, err := h.authedRequest(ctx).Get("/courriers/etiquette/tracking/" + url.PathEscape(code))
	if err != nil {
		return models.Label{}, fmt.Errorf("%w: get label request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Label{}, err
	}

	return decodeData[models.Label](resp.Body())
}

func (h *httpBackendAdapter) LabelPDF(ctx context.Context, id int64) ([]byte, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Accept", "application/pdf").
		Get("/courriers/etiquette/" + strconv.FormatInt(id, 10) + "/pdf")
	if err != nil {
		return nil, fmt.Errorf("%w: label pdf request: %v", ErrNetwork, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}
