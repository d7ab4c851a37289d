package hello

// HelloWorld returns the greeting printed on the first line
func HelloWorld() string {
	return "Hello, world!"
}
