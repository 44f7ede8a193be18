package internal

// Version is the cardstudy release version
const Version = "0.3.0"
