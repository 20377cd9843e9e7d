package main

import "caseshare_backend/internal/app"

func main() {
	app.Run()
}
