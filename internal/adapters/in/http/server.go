package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"
)

// Server handles the shop's HTTP API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerMemberHandler commands.RegisterMemberCommandHandler
	addItemHandler        commands.AddItemCommandHandler
	placeOrderHandler     commands.PlaceOrderCommandHandler

	// Query handlers
	getAllMembersHandler queries.GetAllMembersQueryHandler
	listOrdersHandler    queries.ListOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerMemberHandler commands.RegisterMemberCommandHandler,
	addItemHandler commands.AddItemCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	getAllMembersHandler queries.GetAllMembersQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
) *Server {
	return &Server{
		registerMemberHandler: registerMemberHandler,
		addItemHandler:        addItemHandler,
		placeOrderHandler:     placeOrderHandler,
		getAllMembersHandler:  getAllMembersHandler,
		listOrdersHandler:     listOrdersHandler,
	}
}

// RegisterRoutes mounts every endpoint under /api/v1 and installs the
// request validator.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Validator = NewRequestValidator()

	e.POST("/api/v1/members", s.CreateMember)
	e.GET("/api/v1/members", s.GetMembers)
	e.POST("/api/v1/items", s.CreateItem)
	e.POST("/api/v1/orders", s.CreateOrder)
	e.GET("/api/v1/orders", s.GetOrders)
}

// CreateMember handles POST /api/v1/members - registers a new member.
func (s *Server) CreateMember(ctx echo.Context) error {
	var req NewMemberRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	address, err := kernel.NewAddress(req.City, req.Street, req.Zipcode)
	if err != nil {
		return badRequest(ctx, "Invalid address: "+err.Error())
	}

	cmd, err := commands.NewRegisterMemberCommand(req.Name, address)
	if err != nil {
		return badRequest(ctx, "Invalid member data: "+err.Error())
	}

	memberID, err := s.registerMemberHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Failed to register member")
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: memberID})
}

// GetMembers handles GET /api/v1/members - retrieves all members.
func (s *Server) GetMembers(ctx echo.Context) error {
	query := queries.NewGetAllMembersQuery()

	members, err := s.getAllMembersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to retrieve members")
	}

	response := make([]MemberResponse, 0, len(members))
	for _, m := range members {
		response = append(response, MemberResponse{
			ID:   m.ID,
			Name: m.Name,
			Address: AddressResponse{
				City:    m.Address.City(),
				Street:  m.Address.Street(),
				Zipcode: m.Address.Zipcode(),
			},
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateItem handles POST /api/v1/items - adds a catalog item.
func (s *Server) CreateItem(ctx echo.Context) error {
	var req NewItemRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	kind, err := item.ParseKind(req.Kind)
	if err != nil {
		return badRequest(ctx, "Invalid item kind: "+err.Error())
	}

	cmd, err := commands.NewAddItemCommand(kind, req.Name, req.Price, req.StockQuantity, item.Details{
		Author:   req.Author,
		ISBN:     req.ISBN,
		Artist:   req.Artist,
		Studio:   req.Studio,
		Director: req.Director,
		Actor:    req.Actor,
	})
	if err != nil {
		return badRequest(ctx, "Invalid item data: "+err.Error())
	}

	itemID, err := s.addItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx, "Failed to add item")
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: itemID})
}

// CreateOrder handles POST /api/v1/orders - places an order for a member.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	lines := make([]commands.OrderLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		lines = append(lines, commands.OrderLine{ItemID: line.ItemID, Count: line.Count})
	}

	cmd, err := commands.NewPlaceOrderCommand(req.MemberID, lines)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	orderID, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{
				Code:    http.StatusNotFound,
				Message: err.Error(),
			})
		}
		return internalError(ctx, "Failed to place order")
	}

	return ctx.JSON(http.StatusCreated, IDResponse{ID: orderID})
}

// GetOrders handles GET /api/v1/orders - lists orders in a chosen fetch
// mode. Entity-shaped results are resolved into views before rendering;
// the flat mode renders its rows as-is, duplicates included.
func (s *Server) GetOrders(ctx echo.Context) error {
	mode, err := queries.ParseFetchMode(ctx.QueryParam("mode"))
	if err != nil {
		return badRequest(ctx, "Invalid fetch mode: "+err.Error())
	}

	search, err := parseOrderSearch(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	page, err := parsePageRequest(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewListOrdersQuery(search, mode, page)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx, "Failed to list orders")
	}

	switch mode.Shape() {
	case queries.ShapeFlat:
		response := make([]OrderFlatResponse, 0, len(result.FlatRows))
		for _, row := range result.FlatRows {
			response = append(response, toOrderFlatResponse(row))
		}
		return ctx.JSON(http.StatusOK, response)

	case queries.ShapeEntity:
		response := make([]OrderResponse, 0, len(result.Entities))
		for i := range result.Entities {
			view, viewErr := result.Entities[i].View(ctx.Request().Context())
			if viewErr != nil {
				return internalError(ctx, "Failed to resolve order associations")
			}
			response = append(response, toOrderResponse(view))
		}
		return ctx.JSON(http.StatusOK, response)

	default:
		response := make([]OrderResponse, 0, len(result.Views))
		for _, view := range result.Views {
			response = append(response, toOrderResponse(view))
		}
		return ctx.JSON(http.StatusOK, response)
	}
}

func parseOrderSearch(ctx echo.Context) (queries.OrderSearch, error) {
	search := queries.OrderSearch{MemberName: ctx.QueryParam("memberName")}

	if statusParam := ctx.QueryParam("status"); statusParam != "" {
		status, err := order.ParseStatus(statusParam)
		if err != nil {
			return queries.OrderSearch{}, errors.New("Invalid status: " + err.Error())
		}
		search.Status = &status
	}

	return search, nil
}

func parsePageRequest(ctx echo.Context) (*queries.PageRequest, error) {
	offsetParam := ctx.QueryParam("offset")
	limitParam := ctx.QueryParam("limit")
	if offsetParam == "" && limitParam == "" {
		return nil, nil
	}

	offset := 0
	if offsetParam != "" {
		parsed, err := strconv.Atoi(offsetParam)
		if err != nil {
			return nil, errors.New("Invalid offset: " + err.Error())
		}
		offset = parsed
	}

	limit := queries.MaxRows
	if limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil {
			return nil, errors.New("Invalid limit: " + err.Error())
		}
		limit = parsed
	}

	page, err := queries.NewPageRequest(offset, limit)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
	})
}
