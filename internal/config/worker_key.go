package config

type WorkerKeyStruct struct {
	ResourceAccessQueue string
}

var WorkerKey = &WorkerKeyStruct{
	ResourceAccessQueue: "resource_access_queue",
}
