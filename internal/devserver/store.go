// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Othmane El Bekkali

package devserver

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/oelbekkali/colisops/models"
)

// Storage-level sentinel errors, mapped to HTTP statuses by handlers.
var (
	errNotFound       = errors.New("not found")
	errConflict       = errors.New("already exists")
	errInvalid        = errors.New("invalid data")
	errWrongPassword  = errors.New("wrong password")
	errAgencyNotEmpty = errors.New("agency still owns employees or vehicles")
)

type account struct {
	email       string
	hash        []byte
	role        models.RoleEntity
	employeeCIN string
}

type vehicleRecord struct {
	registration   string
	vehicleType    string
	capacity       float64
	agencyID       int64
	transporterCIN string
}

type employeeRecord struct {
	cin      string
	name     string
	surname  string
	phone    string
	address  string
	agencyID int64
	roleID   int64
}

// memoryStore holds every fixture behind one mutex. The devserver is a
// development stub: simplicity beats lock granularity here.
type memoryStore struct {
	mu sync.Mutex

	roles    []models.RoleEntity
	accounts map[string]*account

	agencies  map[int64]*models.Agency
	vehicles  map[string]*vehicleRecord
	employees map[string]*employeeRecord

	couriers   map[int64]*models.Courier
	deliveries map[int64]*models.Delivery
	invoices   map[int64]*models.Invoice
	labels     map[int64]*models.Label

	agencySeq   int64
	courierSeq  int64
	deliverySeq int64
	invoiceSeq  int64
	labelSeq    int64

	now func() time.Time
}

func newMemoryStore() *memoryStore {
	s := &memoryStore{
		accounts:   make(map[string]*account),
		agencies:   make(map[int64]*models.Agency),
		vehicles:   make(map[string]*vehicleRecord),
		employees:  make(map[string]*employeeRecord),
		couriers:   make(map[int64]*models.Courier),
		deliveries: make(map[int64]*models.Delivery),
		invoices:   make(map[int64]*models.Invoice),
		labels:     make(map[int64]*models.Label),
		now:        time.Now,
	}
	s.seed()
	return s
}

// seed loads the development fixtures: the three backend roles, two
// agencies with staff and vehicles, two login accounts and one
// deposited courier ready for a delivery.
func (s *memoryStore) seed() {
	s.roles = []models.RoleEntity{
		{ID: 1, Name: models.RoleAdmin},
		{ID: 2, Name: models.RoleOperator},
		{ID: 3, Name: models.RoleTransporter},
	}

	s.agencySeq = 2
	s.agencies[1] = &models.Agency{ID: 1, Name: "Agence Centrale Casablanca", Address: "10 rue des Fleurs, Casablanca"}
	s.agencies[2] = &models.Agency{ID: 2, Name: "Agence Rabat Agdal", Address: "4 avenue de France, Rabat"}

	s.vehicles["123-A-45"] = &vehicleRecord{registration: "123-A-45", vehicleType: "fourgon", capacity: 800, agencyID: 1}
	s.vehicles["678-B-90"] = &vehicleRecord{registration: "678-B-90", vehicleType: "camion", capacity: 3500, agencyID: 2, transporterCIN: "CD789012"}

	s.employees["AB123456"] = &employeeRecord{
		cin: "AB123456", name: "Alaoui", surname: "Samira",
		phone: "0600000001", address: "12 rue Atlas, Casablanca",
		agencyID: 1, roleID: 2,
	}
	s.employees["CD789012"] = &employeeRecord{
		cin: "CD789012", name: "Benali", surname: "Karim",
		phone: "0600000002", address: "3 rue Oudaya, Rabat",
		agencyID: 2, roleID: 3,
	}

	// MinCost keeps devserver startup and tests fast. Never reuse
	// these credentials outside local development.
	s.accounts["admin@colisops.dev"] = &account{
		email: "admin@colisops.dev",
		hash:  mustHash("admin-dev"),
		role:  s.roles[0],
	}
	s.accounts["op@colisops.dev"] = &account{
		email:       "op@colisops.dev",
		hash:        mustHash("operator-dev"),
		role:        s.roles[1],
		employeeCIN: "AB123456",
	}

	s.courierSeq = 1
	s.couriers[1] = &models.Courier{
		ID:                1,
		SendDate:          "2026-08-01",
		Weight:            4.5,
		Status:            models.StatusDeposited,
		Price:             45,
		OriginAgency:      "Agence Centrale Casablanca",
		DestinationAgency: "Agence Rabat Agdal",
		RecipientName:     "Nadia Cherkaoui",
		RecipientAddress:  "8 avenue Hassan II, Rabat",
		RecipientCIN:      "EF345678",
		Client: models.Client{
			CIN: "GH901234", Name: "Tazi", Surname: "Omar",
			Address: "22 boulevard Zerktouni, Casablanca", Phone: "0600000003",
		},
	}
}

func mustHash(password string) []byte {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return hash
}

// ── auth ────────────────────────────────────────────────────────────────────

func (s *memoryStore) authenticate(email, password string) (*account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[email]
	if !ok {
		return nil, errNotFound
	}
	if err := bcrypt.CompareHashAndPassword(acc.hash, []byte(password)); err != nil {
		return nil, errWrongPassword
	}
	return acc, nil
}

func (s *memoryStore) userProfile(email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[email]
	if !ok {
		return models.User{}, errNotFound
	}
	return s.userView(acc), nil
}

func (s *memoryStore) userView(acc *account) models.User {
	user := models.User{Email: acc.email, Role: acc.role}
	if acc.employeeCIN != "" {
		if emp, err := s.employeeView(acc.employeeCIN); err == nil {
			user.Employee = &emp
		}
	}
	return user
}

func (s *memoryStore) listRoles() []models.RoleEntity {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.RoleEntity, len(s.roles))
	copy(out, s.roles)
	return out
}

func (s *memoryStore) roleByID(id int64) (models.RoleEntity, bool) {
	for _, r := range s.roles {
		if r.ID == id {
			return r, true
		}
	}
	return models.RoleEntity{}, false
}

// ── agencies ────────────────────────────────────────────────────────────────

func (s *memoryStore) listAgencyAddresses() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.sortedAgencyIDs()
	addresses := make([]string, 0, len(ids))
	for _, id := range ids {
		addresses = append(addresses, s.agencies[id].Address)
	}
	return addresses
}

func (s *memoryStore) sortedAgencyIDs() []int64 {
	ids := make([]int64, 0, len(s.agencies))
	for id := range s.agencies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (s *memoryStore) agencyDetails(address string) (models.AgencyDetailsDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	agency := s.agencyByAddress(address)
	if agency == nil {
		return models.AgencyDetailsDTO{}, errNotFound
	}

	details := models.AgencyDetailsDTO{Name: agency.Name}
	for _, cin := range s.sortedEmployeeCINs() {
		if s.employees[cin].agencyID == agency.ID {
			emp, _ := s.employeeView(cin)
			details.Employees = append(details.Employees, emp)
		}
	}
	for _, reg := range s.sortedVehicleRegs() {
		rec := s.vehicles[reg]
		if rec.agencyID == agency.ID {
			details.Vehicles = append(details.Vehicles, models.VehicleDTO{
				Registration: rec.registration,
				Type:         rec.vehicleType,
				Capacity:     rec.capacity,
			})
		}
	}
	return details, nil
}

func (s *memoryStore) agencyByAddress(address string) *models.Agency {
	for _, a := range s.agencies {
		if a.Address == address {
			return a
		}
	}
	return nil
}

func (s *memoryStore) createAgency(req models.CreateAgencyRequest) (models.AgencyDashboardDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Name == "" || req.Address == "" {
		return models.AgencyDashboardDTO{}, fmt.Errorf("%w: agency name and address are required", errInvalid)
	}
	if s.agencyByAddress(req.Address) != nil {
		return models.AgencyDashboardDTO{}, fmt.Errorf("%w: agency address %q", errConflict, req.Address)
	}

	s.agencySeq++
	agency := &models.Agency{ID: s.agencySeq, Name: req.Name, Address: req.Address}
	s.agencies[agency.ID] = agency

	return s.agencyDashboard(agency), nil
}

func (s *memoryStore) updateAgency(id int64, req models.CreateAgencyRequest) (models.AgencyDashboardDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	agency, ok := s.agencies[id]
	if !ok {
		return models.AgencyDashboardDTO{}, errNotFound
	}
	if req.Name == "" || req.Address == "" {
		return models.AgencyDashboardDTO{}, fmt.Errorf("%w: agency name and address are required", errInvalid)
	}
	if other := s.agencyByAddress(req.Address); other != nil && other.ID != id {
		return models.AgencyDashboardDTO{}, fmt.Errorf("%w: agency address %q", errConflict, req.Address)
	}

	agency.Name = req.Name
	agency.Address = req.Address
	return s.agencyDashboard(agency), nil
}

func (s *memoryStore) deleteAgency(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	agency, ok := s.agencies[id]
	if !ok {
		return errNotFound
	}
	dto := s.agencyDashboard(agency)
	if dto.EmployeeCount > 0 || dto.VehicleCount > 0 {
		return errAgencyNotEmpty
	}

	delete(s.agencies, id)
	return nil
}

func (s *memoryStore) agencyDashboard(agency *models.Agency) models.AgencyDashboardDTO {
	dto := models.AgencyDashboardDTO{ID: agency.ID, Name: agency.Name, Address: agency.Address}
	for _, e := range s.employees {
		if e.agencyID == agency.ID {
			dto.EmployeeCount++
		}
	}
	for _, v := range s.vehicles {
		if v.agencyID == agency.ID {
			dto.VehicleCount++
		}
	}
	return dto
}

func (s *memoryStore) agencyRef(id int64) *models.Agency {
	if a, ok := s.agencies[id]; ok {
		return &models.Agency{ID: a.ID, Name: a.Name, Address: a.Address}
	}
	return nil
}

// ── vehicles ────────────────────────────────────────────────────────────────

func (s *memoryStore) sortedVehicleRegs() []string {
	regs := make([]string, 0, len(s.vehicles))
	for reg := range s.vehicles {
		regs = append(regs, reg)
	}
	sort.Strings(regs)
	return regs
}

func (s *memoryStore) listVehicles(availableOnly bool) []models.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Vehicle
	for _, reg := range s.sortedVehicleRegs() {
		if availableOnly && s.vehicles[reg].transporterCIN != "" {
			continue
		}
		out = append(out, s.vehicleView(reg))
	}
	return out
}

func (s *memoryStore) getVehicle(registration string) (models.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.vehicles[registration]; !ok {
		return models.Vehicle{}, errNotFound
	}
	return s.vehicleView(registration), nil
}

func (s *memoryStore) createVehicle(req models.CreateVehicleRequest) (models.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Registration == "" || req.Type == "" || req.Capacity <= 0 {
		return models.Vehicle{}, fmt.Errorf("%w: registration, type and a positive capacity are required", errInvalid)
	}
	if _, ok := s.vehicles[req.Registration]; ok {
		return models.Vehicle{}, fmt.Errorf("%w: vehicle %q", errConflict, req.Registration)
	}
	if req.AgencyID != 0 {
		if _, ok := s.agencies[req.AgencyID]; !ok {
			return models.Vehicle{}, fmt.Errorf("%w: unknown agency %d", errInvalid, req.AgencyID)
		}
	}

	s.vehicles[req.Registration] = &vehicleRecord{
		registration: req.Registration,
		vehicleType:  req.Type,
		capacity:     req.Capacity,
		agencyID:     req.AgencyID,
	}
	return s.vehicleView(req.Registration), nil
}

func (s *memoryStore) updateVehicle(registration string, req models.CreateVehicleRequest) (models.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.vehicles[registration]
	if !ok {
		return models.Vehicle{}, errNotFound
	}
	if req.Type == "" || req.Capacity <= 0 {
		return models.Vehicle{}, fmt.Errorf("%w: type and a positive capacity are required", errInvalid)
	}
	if req.AgencyID != 0 {
		if _, ok := s.agencies[req.AgencyID]; !ok {
			return models.Vehicle{}, fmt.Errorf("%w: unknown agency %d", errInvalid, req.AgencyID)
		}
		rec.agencyID = req.AgencyID
	}

	rec.vehicleType = req.Type
	rec.capacity = req.Capacity
	return s.vehicleView(registration), nil
}

func (s *memoryStore) deleteVehicle(registration string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.vehicles[registration]
	if !ok {
		return errNotFound
	}
	if rec.transporterCIN != "" {
		return fmt.Errorf("%w: vehicle %q is assigned to a transporter", errConflict, registration)
	}

	delete(s.vehicles, registration)
	return nil
}

func (s *memoryStore) vehicleView(registration string) models.Vehicle {
	rec := s.vehicles[registration]
	v := models.Vehicle{
		Registration: rec.registration,
		Type:         rec.vehicleType,
		Capacity:     rec.capacity,
		Agency:       s.agencyRef(rec.agencyID),
	}
	if rec.transporterCIN != "" {
		if emp, ok := s.employees[rec.transporterCIN]; ok {
			v.Transporter = &models.Transporter{
				CIN: emp.cin, Name: emp.name, Surname: emp.surname,
				Phone: emp.phone, Address: emp.address,
			}
		}
	}
	return v
}

// ── employees ───────────────────────────────────────────────────────────────

func (s *memoryStore) sortedEmployeeCINs() []string {
	cins := make([]string, 0, len(s.employees))
	for cin := range s.employees {
		cins = append(cins, cin)
	}
	sort.Strings(cins)
	return cins
}

func (s *memoryStore) listEmployees() []models.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Employee
	for _, cin := range s.sortedEmployeeCINs() {
		emp, _ := s.employeeView(cin)
		out = append(out, emp)
	}
	return out
}

func (s *memoryStore) getEmployee(cin string) (models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.employeeView(cin)
}

func (s *memoryStore) createEmployee(req models.CreateEmployeeRequest, user *models.CreateUserRequest) (models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkEmployeeRequest(req); err != nil {
		return models.Employee{}, err
	}
	if _, ok := s.employees[req.CIN]; ok {
		return models.Employee{}, fmt.Errorf("%w: employee %q", errConflict, req.CIN)
	}
	if user != nil {
		if user.Email == "" || user.Password == "" {
			return models.Employee{}, fmt.Errorf("%w: account email and password are required", errInvalid)
		}
		if _, ok := s.accounts[user.Email]; ok {
			return models.Employee{}, fmt.Errorf("%w: account %q", errConflict, user.Email)
		}
		if _, ok := s.roleByID(user.RoleID); !ok {
			return models.Employee{}, fmt.Errorf("%w: unknown role %d", errInvalid, user.RoleID)
		}
	}

	s.employees[req.CIN] = &employeeRecord{
		cin: req.CIN, name: req.Name, surname: req.Surname,
		phone: req.Phone, address: req.Address,
		agencyID: req.AgencyID, roleID: req.RoleID,
	}
	if user != nil {
		role, _ := s.roleByID(user.RoleID)
		s.accounts[user.Email] = &account{
			email:       user.Email,
			hash:        mustHash(user.Password),
			role:        role,
			employeeCIN: req.CIN,
		}
	}
	return s.employeeView(req.CIN)
}

func (s *memoryStore) updateEmployee(cin string, req models.CreateEmployeeRequest, user *models.CreateUserRequest) (models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.employees[cin]
	if !ok {
		return models.Employee{}, errNotFound
	}
	if err := s.checkEmployeeRequest(req); err != nil {
		return models.Employee{}, err
	}

	rec.name = req.Name
	rec.surname = req.Surname
	rec.phone = req.Phone
	rec.address = req.Address
	rec.agencyID = req.AgencyID
	rec.roleID = req.RoleID

	if user != nil {
		if acc := s.accountForEmployee(cin); acc != nil {
			acc.email = user.Email
			if user.Password != "" {
				acc.hash = mustHash(user.Password)
			}
		}
	}
	return s.employeeView(cin)
}

func (s *memoryStore) checkEmployeeRequest(req models.CreateEmployeeRequest) error {
	if req.CIN == "" || req.Name == "" || req.Surname == "" {
		return fmt.Errorf("%w: employee CIN, name and surname are required", errInvalid)
	}
	if _, ok := s.agencies[req.AgencyID]; !ok {
		return fmt.Errorf("%w: unknown agency %d", errInvalid, req.AgencyID)
	}
	if _, ok := s.roleByID(req.RoleID); !ok {
		return fmt.Errorf("%w: unknown role %d", errInvalid, req.RoleID)
	}
	return nil
}

func (s *memoryStore) deleteEmployee(cin string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.employees[cin]; !ok {
		return errNotFound
	}

	for _, v := range s.vehicles {
		if v.transporterCIN == cin {
			v.transporterCIN = ""
		}
	}
	for email, acc := range s.accounts {
		if acc.employeeCIN == cin {
			delete(s.accounts, email)
		}
	}
	delete(s.employees, cin)
	return nil
}

func (s *memoryStore) assignVehicle(cin, registration string) (models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	emp, ok := s.employees[cin]
	if !ok {
		return models.Employee{}, errNotFound
	}
	if role, _ := s.roleByID(emp.roleID); role.Name != models.RoleTransporter {
		return models.Employee{}, fmt.Errorf("%w: employee %q is not a transporter", errInvalid, cin)
	}
	vehicle, ok := s.vehicles[registration]
	if !ok {
		return models.Employee{}, errNotFound
	}
	if vehicle.transporterCIN != "" && vehicle.transporterCIN != cin {
		return models.Employee{}, fmt.Errorf("%w: vehicle %q is already assigned", errConflict, registration)
	}

	// A transporter drives one vehicle at a time.
	for _, v := range s.vehicles {
		if v.transporterCIN == cin {
			v.transporterCIN = ""
		}
	}
	vehicle.transporterCIN = cin
	return s.employeeView(cin)
}

func (s *memoryStore) unassignVehicle(cin string) (models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.employees[cin]; !ok {
		return models.Employee{}, errNotFound
	}
	for _, v := range s.vehicles {
		if v.transporterCIN == cin {
			v.transporterCIN = ""
		}
	}
	return s.employeeView(cin)
}

func (s *memoryStore) employeeView(cin string) (models.Employee, error) {
	rec, ok := s.employees[cin]
	if !ok {
		return models.Employee{}, errNotFound
	}

	role, _ := s.roleByID(rec.roleID)
	emp := models.Employee{
		CIN: rec.cin, Name: rec.name, Surname: rec.surname,
		Phone: rec.phone, Address: rec.address,
		Agency: s.agencyRef(rec.agencyID),
		Role:   &models.RoleEntity{ID: role.ID, Name: role.Name},
	}

	if acc := s.accountForEmployee(cin); acc != nil {
		emp.User = &models.User{Email: acc.email, Role: acc.role}
	}

	if role.Name == models.RoleTransporter {
		trs := &models.Transporter{
			CIN: rec.cin, Name: rec.name, Surname: rec.surname,
			Phone: rec.phone, Address: rec.address,
			Agency: s.agencyRef(rec.agencyID),
		}
		for _, reg := range s.sortedVehicleRegs() {
			if s.vehicles[reg].transporterCIN == cin {
				v := s.vehicles[reg]
				trs.Vehicle = &models.Vehicle{
					Registration: v.registration,
					Type:         v.vehicleType,
					Capacity:     v.capacity,
				}
				break
			}
		}
		emp.Transporter = trs
	}
	return emp, nil
}

func (s *memoryStore) accountForEmployee(cin string) *account {
	for _, acc := range s.accounts {
		if acc.employeeCIN == cin {
			return acc
		}
	}
	return nil
}

// ── couriers ────────────────────────────────────────────────────────────────

func (s *memoryStore) listCouriers(status models.CourierStatus) []models.Courier {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, 0, len(s.couriers))
	for id := range s.couriers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []models.Courier
	for _, id := range ids {
		c := s.couriers[id]
		if status != "" && c.Status != status {
			continue
		}
		out = append(out, *c)
	}
	return out
}

func (s *memoryStore) getCourier(id int64) (models.Courier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.couriers[id]
	if !ok {
		return models.Courier{}, errNotFound
	}
	return *c, nil
}

func (s *memoryStore) createCourier(req models.CreateCourierRequest) (models.Courier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req.CIN == "" || req.Weight <= 0 || req.OriginAgency == "" || req.DestinationAgency == "" {
		return models.Courier{}, fmt.Errorf("%w: client CIN, positive weight and both agencies are required", errInvalid)
	}

	status := req.Status
	if status == "" {
		status = models.StatusDeposited
	}
	if status.Rank() < 0 {
		return models.Courier{}, fmt.Errorf("%w: unknown status %q", errInvalid, req.Status)
	}
	price := req.Price
	if price == 0 {
		price = priceForWeight(req.Weight)
	}
	sendDate := req.SendDate
	if sendDate == "" {
		sendDate = s.now().Format("2006-01-02")
	}

	s.courierSeq++
	c := &models.Courier{
		ID:                s.courierSeq,
		SendDate:          sendDate,
		Weight:            req.Weight,
		Status:            status,
		Price:             price,
		OriginAgency:      req.OriginAgency,
		DestinationAgency: req.DestinationAgency,
		RecipientName:     req.RecipientName,
		RecipientAddress:  req.RecipientAddress,
		RecipientCIN:      req.RecipientCIN,
		Client: models.Client{
			CIN: req.CIN, Name: req.ClientName, Surname: req.ClientSurname,
			Address: req.ClientAddress, Phone: req.ClientPhone,
		},
	}
	s.couriers[c.ID] = c
	return *c, nil
}

// priceForWeight is the stub pricing rule: a flat pickup fee plus a
// per-kilogram rate.
func priceForWeight(weight float64) float64 {
	return 20 + weight*10
}

func (s *memoryStore) updateCourier(id int64, req models.CreateCourierRequest) (models.Courier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.couriers[id]
	if !ok {
		return models.Courier{}, errNotFound
	}
	if req.Weight <= 0 {
		return models.Courier{}, fmt.Errorf("%w: positive weight is required", errInvalid)
	}

	c.Weight = req.Weight
	if req.SendDate != "" {
		c.SendDate = req.SendDate
	}
	if req.Price != 0 {
		c.Price = req.Price
	}
	c.OriginAgency = req.OriginAgency
	c.DestinationAgency = req.DestinationAgency
	c.RecipientName = req.RecipientName
	c.RecipientAddress = req.RecipientAddress
	c.RecipientCIN = req.RecipientCIN
	c.Client = models.Client{
		CIN: req.CIN, Name: req.ClientName, Surname: req.ClientSurname,
		Address: req.ClientAddress, Phone: req.ClientPhone,
	}
	return *c, nil
}

func (s *memoryStore) deleteCourier(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.couriers[id]; !ok {
		return errNotFound
	}
	delete(s.couriers, id)
	return nil
}

func (s *memoryStore) changeCourierStatus(id int64, status models.CourierStatus) (models.Courier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.couriers[id]
	if !ok {
		return models.Courier{}, errNotFound
	}
	if status.Rank() < 0 {
		return models.Courier{}, fmt.Errorf("%w: unknown status %q", errInvalid, status)
	}

	c.Status = status
	return *c, nil
}

// ── deliveries ──────────────────────────────────────────────────────────────

func (s *memoryStore) listDeliveries() []models.Delivery {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, 0, len(s.deliveries))
	for id := range s.deliveries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []models.Delivery
	for _, id := range ids {
		out = append(out, s.deliveryView(s.deliveries[id]))
	}
	return out
}

func (s *memoryStore) getDelivery(id int64) (models.Delivery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.deliveries[id]
	if !ok {
		return models.Delivery{}, errNotFound
	}
	return s.deliveryView(d), nil
}

func (s *memoryStore) createDelivery(req models.CreateDeliveryRequest) (models.Delivery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.couriers[req.CourierID]; !ok {
		return models.Delivery{}, fmt.Errorf("%w: unknown courier %d", errInvalid, req.CourierID)
	}
	if req.ShipDate == "" || req.VehicleID == "" || req.TransporterID == "" {
		return models.Delivery{}, fmt.Errorf("%w: ship date, vehicle and transporter are required", errInvalid)
	}
	for _, d := range s.deliveries {
		if d.CourierID == req.CourierID {
			return models.Delivery{}, fmt.Errorf("%w: courier %d already has a delivery", errConflict, req.CourierID)
		}
	}

	s.deliverySeq++
	d := &models.Delivery{
		ID:            s.deliverySeq,
		CourierID:     req.CourierID,
		ShipDate:      req.ShipDate,
		VehicleID:     req.VehicleID,
		TransporterID: req.TransporterID,
	}
	s.deliveries[d.ID] = d
	return s.deliveryView(d), nil
}

func (s *memoryStore) updateDelivery(id int64, req models.CreateDeliveryRequest) (models.Delivery, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.deliveries[id]
	if !ok {
		return models.Delivery{}, errNotFound
	}
	if req.ShipDate == "" || req.VehicleID == "" || req.TransporterID == "" {
		return models.Delivery{}, fmt.Errorf("%w: ship date, vehicle and transporter are required", errInvalid)
	}

	d.ShipDate = req.ShipDate
	d.VehicleID = req.VehicleID
	d.TransporterID = req.TransporterID
	return s.deliveryView(d), nil
}

func (s *memoryStore) deleteDelivery(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.deliveries[id]; !ok {
		return errNotFound
	}
	delete(s.deliveries, id)
	return nil
}

func (s *memoryStore) deliveryView(d *models.Delivery) models.Delivery {
	out := *d
	if c, ok := s.couriers[d.CourierID]; ok {
		courier := *c
		out.Courier = &courier
	}
	return out
}

// ── invoices ────────────────────────────────────────────────────────────────

func (s *memoryStore) listInvoices() []models.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, 0, len(s.invoices))
	for id := range s.invoices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []models.Invoice
	for _, id := range ids {
		out = append(out, s.invoiceView(s.invoices[id]))
	}
	return out
}

func (s *memoryStore) getInvoice(id int64) (models.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.invoices[id]
	if !ok {
		return models.Invoice{}, errNotFound
	}
	return s.invoiceView(inv), nil
}

func (s *memoryStore) createInvoice(req models.CreateInvoiceRequest) (models.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	courier, ok := s.couriers[req.CourierID]
	if !ok {
		return models.Invoice{}, fmt.Errorf("%w: unknown courier %d", errInvalid, req.CourierID)
	}
	if courier.Status != models.StatusDelivered {
		return models.Invoice{}, fmt.Errorf("%w: courier %d is not delivered", errInvalid, req.CourierID)
	}
	if req.PaymentStatus != models.PaymentPaid && req.PaymentStatus != models.PaymentUnpaid {
		return models.Invoice{}, fmt.Errorf("%w: unknown payment status %q", errInvalid, req.PaymentStatus)
	}
	for _, inv := range s.invoices {
		if inv.CourierID == req.CourierID {
			return models.Invoice{}, fmt.Errorf("%w: courier %d is already invoiced", errConflict, req.CourierID)
		}
	}

	s.invoiceSeq++
	inv := &models.Invoice{
		ID:            s.invoiceSeq,
		CourierID:     req.CourierID,
		Amount:        courier.Price,
		IssueDate:     s.now().Format("2006-01-02"),
		PaymentStatus: req.PaymentStatus,
	}
	s.invoices[inv.ID] = inv
	return s.invoiceView(inv), nil
}

func (s *memoryStore) updateInvoiceStatus(id int64, status models.PaymentStatus) (models.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.invoices[id]
	if !ok {
		return models.Invoice{}, errNotFound
	}
	if status != models.PaymentPaid && status != models.PaymentUnpaid {
		return models.Invoice{}, fmt.Errorf("%w: unknown payment status %q", errInvalid, status)
	}

	inv.PaymentStatus = status
	return s.invoiceView(inv), nil
}

func (s *memoryStore) invoiceView(inv *models.Invoice) models.Invoice {
	out := *inv
	if c, ok := s.couriers[inv.CourierID]; ok {
		courier := *c
		out.Courier = &courier
	}
	return out
}

// ── labels ──────────────────────────────────────────────────────────────────

func (s *memoryStore) generateLabel(courierID int64) (models.Label, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.couriers[courierID]; !ok {
		return models.Label{}, fmt.Errorf("%w: unknown courier %d", errInvalid, courierID)
	}

	// Label generation is idempotent per courier.
	for _, l := range s.labels {
		if l.CourierID == courierID {
			return *l, nil
		}
	}

	s.labelSeq++
	label := &models.Label{
		ID:           s.labelSeq,
		CourierID:    courierID,
		TrackingCode: uuid.NewString(),
		CreatedAt:    s.now().Format("2006-01-02"),
	}
	s.labels[label.ID] = label
	return *label, nil
}

func (s *memoryStore) labelByTracking(code string) (models.Label, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range s.labels {
		if l.TrackingCode == code {
			return *l, nil
		}
	}
	return models.Label{}, errNotFound
}

func (s *memoryStore) labelByID(id int64) (models.Label, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.labels[id]
	if !ok {
		return models.Label{}, errNotFound
	}
	return *l, nil
}
