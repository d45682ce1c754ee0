package routes

import (
	"github.com/labstack/echo/v4"

	"facilities-console/internal/controllers"
)

func runCampusRouter(group *echo.Group, ctrl *controllers.CampusController) {
	group.GET("/campus", ctrl.GetCampuses)
	group.GET("/campus/new", ctrl.NewCampus)
	group.POST("/campus", ctrl.CreateCampus)
	group.GET("/campus/:id/edit", ctrl.EditCampus)
	group.POST("/campus/:id/edit", ctrl.UpdateCampus)
	group.GET("/campus/:id/delete", ctrl.ConfirmDelete)
	group.POST("/campus/:id/delete", ctrl.DeleteCampus)
}

func runFacultyRouter(group *echo.Group, ctrl *controllers.FacultyController) {
	group.GET("/facultades", ctrl.GetFaculties)
	group.GET("/facultades/new", ctrl.NewFaculty)
	group.POST("/facultades", ctrl.CreateFaculty)
	group.GET("/facultades/:id/edit", ctrl.EditFaculty)
	group.POST("/facultades/:id/edit", ctrl.UpdateFaculty)
	group.GET("/facultades/:id/delete", ctrl.ConfirmDelete)
	group.POST("/facultades/:id/delete", ctrl.DeleteFaculty)
}

func runBlockRouter(group *echo.Group, ctrl *controllers.BlockController) {
	group.GET("/bloques", ctrl.GetBlocks)
	group.GET("/bloques/new", ctrl.NewBlock)
	group.POST("/bloques", ctrl.CreateBlock)
	group.GET("/bloques/:id/edit", ctrl.EditBlock)
	group.POST("/bloques/:id/edit", ctrl.UpdateBlock)
	group.GET("/bloques/:id/delete", ctrl.ConfirmDelete)
	group.POST("/bloques/:id/delete", ctrl.DeleteBlock)
}

func runAssetRouter(group *echo.Group, ctrl *controllers.AssetController) {
	group.GET("/activos", ctrl.GetAssets)
	group.GET("/activos/export", ctrl.Export)
	group.GET("/activos/bienes/:nia", ctrl.GetGoods)
	group.GET("/activos/:id/delete", ctrl.ConfirmDelete)
	group.POST("/activos/:id/delete", ctrl.DeleteAsset)
}
