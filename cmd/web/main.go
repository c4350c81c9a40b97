// @title           SkillLink API
// @version         1.0
// @description     Backend del marketplace de servicios SkillLink.
// @host            localhost:8080
// @BasePath        /api/v1

package main

import "skilllink_backend/internal/app"

func main() {
	app.Run()
}
