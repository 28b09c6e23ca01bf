package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"loomworks.app/api-server/internal/http/dto"
	"loomworks.app/api-server/internal/model"
	"loomworks.app/api-server/internal/service"
)

type ExpenseHandler struct {
	expenseService service.ExpenseService
}

func NewExpenseHandler(expenseService service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

func (h *ExpenseHandler) Submit(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}

	var req dto.SubmitExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expense, err := h.expenseService.Submit(c.Request.Context(), actor, &model.Expense{
		ProjectID:   req.ProjectID,
		IncurredOn:  req.IncurredOn,
		AmountCents: req.AmountCents,
		Currency:    req.Currency,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		notFoundOr(c, err, "failed to submit expense")
		return
	}

	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

func (h *ExpenseHandler) Get(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}
	expenseID, ok := pathID(c, "id")
	if !ok {
		return
	}

	expense, err := h.expenseService.Get(c.Request.Context(), actor, expenseID)
	if err != nil {
		notFoundOr(c, err, "failed to get expense")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

func (h *ExpenseHandler) ListByProject(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	expenses, err := h.expenseService.ListByProject(c.Request.Context(), actor, projectID)
	if err != nil {
		notFoundOr(c, err, "failed to list expenses")
		return
	}
	c.JSON(http.StatusOK, gin.H{"expenses": toExpenseResponses(expenses)})
}

func (h *ExpenseHandler) ListMine(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}

	expenses, err := h.expenseService.ListMine(c.Request.Context(), actor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list expenses"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"expenses": toExpenseResponses(expenses)})
}

func (h *ExpenseHandler) Decide(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}
	expenseID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.DecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	expense, err := h.expenseService.Decide(c.Request.Context(), actor, expenseID, req.Approve)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyDecided) {
			c.JSON(http.StatusConflict, gin.H{"error": "expense already decided"})
			return
		}
		notFoundOr(c, err, "failed to decide expense")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

func (h *ExpenseHandler) MarkReimbursed(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}
	expenseID, ok := pathID(c, "id")
	if !ok {
		return
	}

	expense, err := h.expenseService.MarkReimbursed(c.Request.Context(), actor, expenseID)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyDecided) {
			c.JSON(http.StatusConflict, gin.H{"error": "expense is not approved"})
			return
		}
		notFoundOr(c, err, "failed to mark expense reimbursed")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

func (h *ExpenseHandler) Delete(c *gin.Context) {
	actor, ok := identity(c)
	if !ok {
		return
	}
	expenseID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.expenseService.Delete(c.Request.Context(), actor, expenseID); err != nil {
		if errors.Is(err, service.ErrAlreadyDecided) {
			c.JSON(http.StatusConflict, gin.H{"error": "expense already decided"})
			return
		}
		notFoundOr(c, err, "failed to delete expense")
		return
	}
	c.Status(http.StatusNoContent)
}

func toExpenseResponses(expenses []model.Expense) []*dto.ExpenseResponse {
	resp := make([]*dto.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		resp = append(resp, dto.ToExpenseResponse(&expenses[i]))
	}
	return resp
}
