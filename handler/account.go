package handler

import (
	"bassik_backend/constants"
	"bassik_backend/database"
	"bassik_backend/helper"
	"bassik_backend/model"
	"bassik_backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetAccounts(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ERROR_ADMIN_ONLY, nil)
	}

	var accounts []model.Account
	if err := database.DB.Preload("Venue").Find(&accounts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, accounts)
}

func Me(c *fiber.Ctx) error {
	claim, _, _ := helper.GetInfoAccountFromToken(c)
	if claim.AccountId == 0 {
		return nil // response already written by the helper
	}

	var account model.Account
	if err := database.DB.Preload("Venue").First(&account, claim.AccountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Account not found", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, account)
}

func CreateAccount(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ERROR_ADMIN_ONLY, nil)
	}

	accountInput := c.Locals("createInput").(model.CreateAccountInput)

	hashed, err := helper.HashPassword(accountInput.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var newAccount model.Account
	copier.Copy(&newAccount, &accountInput)
	newAccount.Password = hashed
	newAccount.IsActive = true

	if err := database.DB.Create(&newAccount).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not create account", err)
	}

	return utils.SuccessResponse(c, 201, newAccount)
}

func AdminChangePassword(c *fiber.Ctx) error {
	_, isAdmin, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, 403, constants.ERROR_ADMIN_ONLY, nil)
	}

	input := c.Locals("changePasswordInput").(model.AdminChangePassword)

	var account model.Account
	if err := database.DB.First(&account, input.AccountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Account not found", err)
	}

	hashed, err := helper.HashPassword(input.NewPassword)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	account.Password = hashed
	if err := database.DB.Save(&account).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not change password", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"message": "Password changed"})
}
