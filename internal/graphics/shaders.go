package graphics

const VertexShaderSource = `
#version 330 core
layout (location = 0) in vec3 vertexPosition;
layout (location = 1) in vec3 vertexColor;

out vec4 color;

void main()
{
    color = vec4(vertexColor, 1.0);
    gl_Position = vec4(vertexPosition, 1.0);
}
`

const FragmentShaderSource = `
#version 330 core
out vec4 FragColor;

in vec4 color;

void main()
{
    FragColor = color;
}
`
